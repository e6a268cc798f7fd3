package config

// relative tolerance used by geom.Point2D.Near
const Tolerance = 1e-9

// iterations per randomized property test
const PropertyTestCount = 10000
