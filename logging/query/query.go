// Package query provides typed helpers for emitting telemetry from the
// runtime query surface: pathfinding, influence maps, and vision.
package query

import (
	"context"

	"maptool/logging"
)

const category logging.Category = "query"

const (
	EventPathFound      logging.EventType = "query.path.found"
	EventPathNotFound   logging.EventType = "query.path.not_found"
	EventBlocksChanged  logging.EventType = "query.blocks.changed"
	EventInfluenceReset logging.EventType = "query.influence.reset"
	EventVisionComputed logging.EventType = "query.vision.computed"
)

// PathFound reports a successful pathfind, including node expansions for
// profiling the heuristic.
func PathFound(ctx context.Context, pub logging.Publisher, mapType string, length int, nodesExpanded int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventPathFound,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"map_type":       mapType,
			"length":         length,
			"nodes_expanded": nodesExpanded,
		},
	})
}

// PathNotFound reports that no path existed between the requested endpoints.
func PathNotFound(ctx context.Context, pub logging.Publisher, mapType string, startX, startY, endX, endY int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventPathNotFound,
		Severity: logging.SeverityWarn,
		Category: category,
		Payload: map[string]any{
			"map_type": mapType,
			"start_x":  startX,
			"start_y":  startY,
			"end_x":    endX,
			"end_y":    endY,
		},
	})
}

// BlocksChanged reports a create_block(s)/remove_blocks mutation.
func BlocksChanged(ctx context.Context, pub logging.Publisher, added int, removed int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventBlocksChanged,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"added":   added,
			"removed": removed,
		},
	})
}

// InfluenceReset reports a ResetInfluence call zeroing a grid's influence
// overlay.
func InfluenceReset(ctx context.Context, pub logging.Publisher, mapType string) {
	pub.Publish(ctx, logging.Event{
		Type:     EventInfluenceReset,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"map_type": mapType,
		},
	})
}

// VisionComputed reports a calculate_vision_map call, including how many
// vision sources were raycast.
func VisionComputed(ctx context.Context, pub logging.Publisher, sources int, visibleCells int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventVisionComputed,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"sources":       sources,
			"visible_cells": visibleCells,
		},
	})
}
