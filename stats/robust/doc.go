// Package robust provides the robust central-tendency and dispersion
// estimators shared by the light-curve conditioning routines.
//
// Estimators are selected through the [Center] and [Scale] enums so that
// an unsupported choice is a construction-time error instead of a silent
// string mismatch. All functions copy before sorting and never mutate
// their input.
package robust
