package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var recordToolDef = mcp.NewTool("observation_record",
	mcp.WithDescription("Record a field observation: hard (physical) and soft (informational) spectrum scores at a location. Returns the stored observation with its displacement vector."),
	mcp.WithString("location",
		mcp.Description("Free-form location label. Optional when site names a preset."),
	),
	mcp.WithString("site",
		mcp.Description("Name of a preset site from the configuration. Fills location and coordinates."),
	),
	mcp.WithNumber("latitude",
		mcp.Description("Latitude in decimal degrees (-90 to 90). Required unless site is given."),
	),
	mcp.WithNumber("longitude",
		mcp.Description("Longitude in decimal degrees (-180 to 180). Required unless site is given."),
	),
	mcp.WithNumber("hard_authenticity",
		mcp.Description("Hard-axis authenticity score (physical/environmental)."),
	),
	mcp.WithNumber("hard_emotion",
		mcp.Description("Hard-axis emotional affect score."),
	),
	mcp.WithNumber("soft_authenticity",
		mcp.Description("Soft-axis authenticity score (informational/experiential)."),
	),
	mcp.WithNumber("soft_emotion",
		mcp.Description("Soft-axis emotional affect score."),
	),
	mcp.WithString("note",
		mcp.Description("Optional markdown note attached to the observation."),
	),
	mcp.WithString("photo_ref",
		mcp.Description("Optional reference to a previously stored photo."),
	),
)

var listToolDef = mcp.NewTool("observation_list",
	mcp.WithDescription("List recorded observations in insertion order, optionally filtered by location."),
	mcp.WithString("location",
		mcp.Description("Filter to observations whose location matches this label (case and whitespace insensitive)."),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of observations to return (default 50, max 500)."),
	),
)

var fetchToolDef = mcp.NewTool("observation_fetch",
	mcp.WithDescription("Fetch a single observation by ID, with its displacement vector and category."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Observation ULID."),
	),
)

var aggregateToolDef = mcp.NewTool("vector_aggregate",
	mcp.WithDescription("Compute aggregate displacement statistics over all observations: mean magnitude, circular mean direction, circular variance, and per-category counts."),
)

var geojsonToolDef = mcp.NewTool("geojson_export",
	mcp.WithDescription("Export all observations as a GeoJSON FeatureCollection of point features."),
)

var sitesToolDef = mcp.NewTool("site_list",
	mcp.WithDescription("List the preset sites configured for quick recording."),
)
