// Package domain models the NOAA SWPC OVATION aurora forecast feed.
//
// # Data Source
//
// The forecast comes from the Space Weather Prediction Center's OVATION
// model, published as JSON at
// https://services.swpc.noaa.gov/json/ovation_aurora_latest.json. One payload
// covers the whole globe on a 1°×1° grid:
//
//	{
//	  "Observation Time": "2025-11-12T21:47:00Z",
//	  "Forecast Time":    "2025-11-12T22:36:00Z",
//	  "coordinates": [[lon, lat, aurora], ...]
//	}
//
// Each coordinates row is [longitude, latitude, intensity]. Longitudes arrive
// in the 0..359 convention (not -180..180), latitudes span -90..90, and the
// intensity is OVATION's unitless aurora-visibility value, zero over most of
// the grid and peaking inside the auroral ovals. Both time fields are
// optional: either may be absent or empty, independently, and that is a valid
// feed state rather than an anomaly.
//
// # Threshold Layers
//
// The map artifact shows the same sample set filtered at fixed intensity
// thresholds (see [DefaultThresholds]). Layer visibility is an
// exclusive-choice state on [MapDocument]: exactly one layer is visible at
// any time, switched through [MapDocument.ApplySelection]. The colorbar
// legend belongs to the first layer only so toggling never shows two
// conflicting legends, while every layer shares one color range so the
// layers stay visually comparable.
//
// # Timestamps
//
// Artifact filenames embed both feed times in a compact form; parsing is
// best-effort and degrades to the literal "unknown" rather than failing. See
// [FormatCompactTimestamp] and [SnapshotStem].
package domain
