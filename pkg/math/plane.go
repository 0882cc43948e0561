package math

// Plane3 is a plane in Hessian normal form: Normal·p = Dist.
type Plane3 struct {
	Normal Vec3
	Dist   float64
}

// PlaneFromPoints builds the plane through a, b and c.
// The normal follows the winding a->b->c and is zero for collinear points.
func PlaneFromPoints(a, b, c Vec3) Plane3 {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane3{Normal: n, Dist: n.Dot(a)}
}
