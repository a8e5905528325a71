package astro

import (
	"math"
)

// Vec3 represents a 3D vector in any reference frame. Direction vectors
// produced by FromRADec are unit length.
type Vec3 struct {
	X, Y, Z float64
}

// FromRADec returns the unit vector pointing at (ra, dec), both in degrees.
func FromRADec(raDeg, decDeg float64) Vec3 {
	ra, dec := DegToRad(raDeg), DegToRad(decDeg)
	cd := math.Cos(dec)
	return Vec3{
		X: cd * math.Cos(ra),
		Y: cd * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// RADec returns the spherical angles of v in degrees. RA is in [0, 360)
// and is 0 when v points at a pole.
func (v Vec3) RADec() (raDeg, decDeg float64) {
	r := v.Norm()
	if r == 0 {
		return 0, 0
	}
	z := v.Z / r
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}
	decDeg = RadToDeg(math.Asin(z))
	if v.X == 0 && v.Y == 0 {
		return 0, decDeg
	}
	return NormalizeDeg(RadToDeg(math.Atan2(v.Y, v.X))), decDeg
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the scalar product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Displace shifts the unit direction u by the small vector b and
// renormalizes. Aberration and both parallaxes are displacements of this
// form.
func Displace(u, b Vec3) Vec3 {
	return u.Add(b).Normalized()
}

// Undisplace inverts Displace exactly: it returns the unit vector u such
// that Displace(u, b) points along p. It requires |b| < 1.
func Undisplace(p, b Vec3) Vec3 {
	p = p.Normalized()
	pb := p.Dot(b)
	k := pb + math.Sqrt(pb*pb-b.Dot(b)+1)
	return p.Scale(k).Sub(b).Normalized()
}

// Matrix3 is a 3×3 rotation matrix in row-major order.
type Matrix3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotX returns the frame rotation R1(angle) about the X axis. Positive
// angles rotate the frame counter-clockwise when viewed from +X.
func RotX(angleRad float64) Matrix3 {
	s, c := math.Sincos(angleRad)
	return Matrix3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotY returns the frame rotation R2(angle) about the Y axis.
func RotY(angleRad float64) Matrix3 {
	s, c := math.Sincos(angleRad)
	return Matrix3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// RotZ returns the frame rotation R3(angle) about the Z axis.
func RotZ(angleRad float64) Matrix3 {
	s, c := math.Sincos(angleRad)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns the product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Transpose returns mᵀ, which is the inverse of a rotation matrix.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Apply returns m·v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsOrthonormal reports whether m·mᵀ is the identity and det(m) is 1,
// both within tol.
func (m Matrix3) IsOrthonormal(tol float64) bool {
	p := m.Mul(m.Transpose())
	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(p[i][j]-id[i][j]) > tol {
				return false
			}
		}
	}
	return math.Abs(m.Det()-1) <= tol
}

// RotateRADec applies m to the direction (ra, dec) and returns the
// rotated angles in degrees.
func (m Matrix3) RotateRADec(raDeg, decDeg float64) (float64, float64) {
	return m.Apply(FromRADec(raDeg, decDeg)).RADec()
}

// EclipticLatitude returns the ecliptic latitude in degrees for a vector.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return RadToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees for a vector.
func EclipticLongitude(v Vec3) float64 {
	return NormalizeDeg(RadToDeg(math.Atan2(v.Y, v.X)))
}

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ for the
// given obliquity in degrees.
func EquatorialToEcliptic(eq Vec3, obliquityDeg float64) Vec3 {
	return RotX(DegToRad(obliquityDeg)).Apply(eq)
}

// EclipticToEquatorial converts ecliptic XYZ to equatorial XYZ for the
// given obliquity in degrees.
func EclipticToEquatorial(ecl Vec3, obliquityDeg float64) Vec3 {
	return RotX(-DegToRad(obliquityDeg)).Apply(ecl)
}
