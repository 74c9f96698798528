// Package windfield reconstructs horizontal wind speed, direction, vertical
// shear and vertical veer from raw four-beam continuous-wave Doppler-lidar
// measurements.
//
// Each lidar emits four fixed line-of-sight beams, paired into an upper pair
// (los 0, 1) and a lower pair (los 2, 3). Every beam reports the wind
// vector's projection onto its own axis (radial wind speed) at a known
// azimuth/zenith geometry. Two beams constrain a planar wind vector through
// a 2x2 linear system; the upper and lower planes together yield shear and
// veer.
//
// Two beam models are supported by one engine:
//
//   - ModelStatic: fixed mounting at a known hub height, no platform motion.
//   - ModelMotion: the lidar sits on a moving structure; sample positions and
//     radial speeds are corrected for platform translation, rotation and
//     their time derivatives (inertial reference frame correction).
//
// The engine is a pure, deterministic, single-shot transform: it consumes
// flat per-beam sample columns and produces a column-oriented result table.
// It performs no I/O. Partial failure is expressed through per-row NaN; the
// only error path is the upfront structural validation of the input columns.
//
// The coordinate system is left-handed, X-forward, Y-right and Z-up.
package windfield
