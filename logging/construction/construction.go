// Package construction provides typed helpers for emitting telemetry during
// map construction: the three-pass point classification, pathing grid
// assembly, and choke grouping.
package construction

import (
	"context"

	"maptool/logging"
)

const category logging.Category = "construction"

const (
	EventPassStarted    logging.EventType = "construction.pass.started"
	EventPassCompleted  logging.EventType = "construction.pass.completed"
	EventOverlordFound  logging.EventType = "construction.overlord.found"
	EventChokesGrouped  logging.EventType = "construction.chokes.grouped"
	EventGridBuilt      logging.EventType = "construction.grid.built"
	EventMapBuildFailed logging.EventType = "construction.map.build_failed"
)

// PassStarted reports the beginning of a numbered construction pass.
func PassStarted(ctx context.Context, pub logging.Publisher, pass int, width, height int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventPassStarted,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"pass":   pass,
			"width":  width,
			"height": height,
		},
	})
}

// PassCompleted reports that a numbered construction pass finished, along
// with how many cells it touched.
func PassCompleted(ctx context.Context, pub logging.Publisher, pass int, cellsVisited int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventPassCompleted,
		Severity: logging.SeverityDebug,
		Category: category,
		Payload: map[string]any{
			"pass":          pass,
			"cells_visited": cellsVisited,
		},
	})
}

// OverlordFound reports a finalized overlord plateau and its centroid.
func OverlordFound(ctx context.Context, pub logging.Publisher, plateauID int, size int, centroidX, centroidY float64) {
	pub.Publish(ctx, logging.Event{
		Type:     EventOverlordFound,
		Severity: logging.SeverityInfo,
		Category: category,
		Payload: map[string]any{
			"plateau_id": plateauID,
			"size":       size,
			"centroid_x": centroidX,
			"centroid_y": centroidY,
		},
	})
}

// ChokesGrouped reports how many raw choke lines were clustered into how
// many choke regions.
func ChokesGrouped(ctx context.Context, pub logging.Publisher, rawPoints int, regions int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventChokesGrouped,
		Severity: logging.SeverityInfo,
		Category: category,
		Payload: map[string]any{
			"raw_points": rawPoints,
			"regions":    regions,
		},
	})
}

// GridBuilt reports that a pathing grid for a unit class finished building.
func GridBuilt(ctx context.Context, pub logging.Publisher, mapType string, walkableCells int) {
	pub.Publish(ctx, logging.Event{
		Type:     EventGridBuilt,
		Severity: logging.SeverityInfo,
		Category: category,
		Payload: map[string]any{
			"map_type":       mapType,
			"walkable_cells": walkableCells,
		},
	})
}

// MapBuildFailed reports that map construction aborted with an error.
func MapBuildFailed(ctx context.Context, pub logging.Publisher, err error) {
	pub.Publish(ctx, logging.Event{
		Type:     EventMapBuildFailed,
		Severity: logging.SeverityError,
		Category: category,
		Payload: map[string]any{
			"error": err.Error(),
		},
	})
}
