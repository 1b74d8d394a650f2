// Package logging provides the leveled, structured logger used while
// constructing meshes and operators. It wraps logrus the way
// spatialmodel/inmap's cmd/inmapweb sets up its package-level logger, scoped
// down to what the core needs: a shared *logrus.Logger plus a couple of
// field-tagged helpers for the recurring construction-time diagnostics.
package logging

import (
	"github.com/sirupsen/logrus"
)

// Log is the package-level logger used by mesh and operator construction.
// Callers that embed shoccs in a larger application may replace it (or its
// output/formatter/level) before calling into the package.
var Log = logrus.StandardLogger()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.InfoLevel)
}

// WithDirection returns an entry tagged with the spatial direction under
// construction, used by mesh and operators when logging per-direction
// diagnostics.
func WithDirection(dir int) *logrus.Entry {
	return Log.WithField("dir", dir)
}

// FullySolidLine logs a diagnostic when the part of a ray along direction
// dir after its last intersection lies inside a solid object, so no line is
// emitted for it; the upstream silently produced a zero-length line in this
// case, which this package surfaces instead of hiding.
func FullySolidLine(dir int, slow, fast int) {
	WithDirection(dir).WithFields(logrus.Fields{
		"slow": slow,
		"fast": fast,
	}).Warn("ray ends inside solid; no fluid run after the last intersection")
}
