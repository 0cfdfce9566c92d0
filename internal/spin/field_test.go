package spin_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
)

var _ = Describe("Parameters", func() {
	var params spin.Parameters

	BeforeEach(func() {
		params = spin.Parameters{Radius: 2, Helicity: 0, Vorticity: 1, Chirality: 1}
	})

	It("accepts a valid configuration", func() {
		Expect(params.Validate()).To(Succeed())
	})

	It("rejects a non-positive radius", func() {
		params.Radius = 0
		Expect(params.Validate()).To(MatchError(spin.ErrRadius))
		params.Radius = -3
		Expect(params.Validate()).To(MatchError(spin.ErrRadius))
	})

	It("rejects vorticity outside {-1, +1}", func() {
		params.Vorticity = 0
		Expect(params.Validate()).To(MatchError(spin.ErrVorticity))
		params.Vorticity = 2
		Expect(params.Validate()).To(MatchError(spin.ErrVorticity))
	})

	It("rejects chirality outside {-1, +1}", func() {
		params.Chirality = 0
		Expect(params.Validate()).To(MatchError(spin.ErrChirality))
	})

	It("rejects helicity outside [0, pi]", func() {
		params.Helicity = -0.1
		Expect(params.Validate()).To(MatchError(spin.ErrHelicity))
		params.Helicity = math.Pi + 0.1
		Expect(params.Validate()).To(MatchError(spin.ErrHelicity))
	})

	It("accepts the helicity endpoints", func() {
		params.Helicity = 0
		Expect(params.Validate()).To(Succeed())
		params.Helicity = math.Pi
		Expect(params.Validate()).To(Succeed())
	})

	It("round-trips through GetParams and SetParam", func() {
		Expect(params.SetParam("helicity", math.Pi/2)).To(Succeed())
		Expect(params.SetParam("radius", 7)).To(Succeed())
		Expect(params.SetParam("vorticity", -1)).To(Succeed())

		m := params.GetParams()
		Expect(m["helicity"]).To(BeNumerically("~", math.Pi/2))
		Expect(m["radius"]).To(Equal(7.0))
		Expect(m["vorticity"]).To(Equal(-1.0))
		Expect(m["chirality"]).To(Equal(1.0))
	})

	It("rejects unknown parameter names", func() {
		Expect(params.SetParam("mass", 1)).To(MatchError(spin.ErrUnknownParam))
	})
})

var _ = Describe("EvaluatePoint", func() {
	base := spin.Parameters{Radius: 2, Helicity: 0, Vorticity: 1, Chirality: 1}

	It("points along -z at the exact center, for any helicity and vorticity", func() {
		for _, h := range []float64{0, math.Pi / 3, math.Pi / 2, math.Pi} {
			for _, q := range []int{-1, 1} {
				for _, c := range []int{-1, 1} {
					p := base
					p.Helicity = h
					p.Vorticity = q
					p.Chirality = c
					v := spin.EvaluatePoint(0, 0, p)
					Expect(v.X).To(BeZero())
					Expect(v.Y).To(BeZero())
					Expect(v.Z).To(Equal(-float64(c)))
				}
			}
		}
	})

	It("returns the exact uniform background outside the disk", func() {
		v := spin.EvaluatePoint(2.1, 0, base)
		Expect(v).To(Equal(spin.Vector{0, 0, 1}))

		v = spin.EvaluatePoint(-5, 4, base)
		Expect(v).To(Equal(spin.Vector{0, 0, 1}))

		flipped := base
		flipped.Chirality = -1
		v = spin.EvaluatePoint(0, 3, flipped)
		Expect(v).To(Equal(spin.Vector{0, 0, -1}))
	})

	It("lies fully in-plane at rho = radius/2 with helicity pi/2", func() {
		// psi = 0 + pi/2, k*rho = pi/2: the spin is (0, 1, 0).
		p := base
		p.Helicity = math.Pi / 2
		v := spin.EvaluatePoint(1, 0, p)
		Expect(v.X).To(BeNumerically("~", 0, 1e-12))
		Expect(v.Y).To(BeNumerically("~", 1, 1e-12))
		Expect(v.Z).To(BeNumerically("~", 0, 1e-12))
	})

	It("points radially outward at rho = radius/2 with zero helicity", func() {
		v := spin.EvaluatePoint(0, 1, base)
		Expect(v.X).To(BeNumerically("~", 0, 1e-12))
		Expect(v.Y).To(BeNumerically("~", 1, 1e-12))
		Expect(v.Z).To(BeNumerically("~", 0, 1e-12))
	})

	It("flips the full winding with vorticity -1", func() {
		p := base
		p.Vorticity = -1
		// At angle 90 degrees, psi = -pi/2.
		v := spin.EvaluatePoint(0, 1, p)
		Expect(v.X).To(BeNumerically("~", 0, 1e-12))
		Expect(v.Y).To(BeNumerically("~", -1, 1e-12))
	})

	It("negates every component when chirality flips", func() {
		positions := [][2]float64{{0, 0}, {0.5, 0.3}, {1, 0}, {-1.2, 0.8}, {3, 3}}
		for _, pos := range positions {
			plus := spin.EvaluatePoint(pos[0], pos[1], base)
			minus := base
			minus.Chirality = -1
			flipped := spin.EvaluatePoint(pos[0], pos[1], minus)
			Expect(flipped).To(Equal(plus.Neg()))
		}
	})

	It("respects an off-origin center", func() {
		p := base
		p.CenterX = 4.5
		p.CenterY = 3.75
		v := spin.EvaluatePoint(4.5, 3.75, p)
		Expect(v).To(Equal(spin.Vector{0, 0, -1}))
	})
})

var _ = Describe("EvaluateField", func() {
	var lat *lattice.Lattice
	var params spin.Parameters

	BeforeEach(func() {
		var err error
		lat, err = lattice.Generate(4, 4, 1.0)
		Expect(err).NotTo(HaveOccurred())

		cx, cy := lat.Center()
		params = spin.Parameters{
			Radius: 2, CenterX: cx, CenterY: cy,
			Helicity: 0, Vorticity: 1, Chirality: 1,
		}
	})

	It("returns one vector per lattice point", func() {
		field, err := spin.EvaluateField(lat, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(field).To(HaveLen(len(lat.Points)))
	})

	It("produces unit vectors everywhere, for every parameter combination", func() {
		for _, h := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi} {
			for _, q := range []int{-1, 1} {
				for _, c := range []int{-1, 1} {
					for _, r := range []float64{0.5, 2, 10} {
						p := params
						p.Helicity = h
						p.Vorticity = q
						p.Chirality = c
						p.Radius = r
						field, err := spin.EvaluateField(lat, p)
						Expect(err).NotTo(HaveOccurred())
						for _, v := range field {
							Expect(v.Norm()).To(BeNumerically("~", 1, 1e-9))
						}
					}
				}
			}
		}
	})

	It("leaves points beyond the skyrmion radius in the exact background state", func() {
		cx, cy := lat.Center()
		field, err := spin.EvaluateField(lat, params)
		Expect(err).NotTo(HaveOccurred())

		for idx, pt := range lat.Points {
			rho := math.Hypot(pt.X-cx, pt.Y-cy)
			if rho > params.Radius {
				Expect(field[idx]).To(Equal(spin.Vector{0, 0, 1}),
					"point %d at rho=%f should be background", idx, rho)
			}
		}
	})

	It("is idempotent for identical inputs", func() {
		first, err := spin.EvaluateField(lat, params)
		Expect(err).NotTo(HaveOccurred())
		second, err := spin.EvaluateField(lat, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("rejects invalid parameters before touching the lattice", func() {
		params.Radius = -1
		_, err := spin.EvaluateField(lat, params)
		Expect(err).To(MatchError(spin.ErrRadius))
	})
})
