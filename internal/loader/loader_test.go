package loader

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boltzmannizer/internal/thermo"
)

const wellFormed = `{ "format_version": 1
, "k_B": 0.695031
, "units": { "energy": "cm^-1"
           , "temperature": "K"
           }
, "levels": [ [0, 1]
            , [100, 3]
            , [250, 5]
            ]
}`

const wellFormedYAML = `format_version: 1
k_B: 0.695031
units:
  energy: cm^-1
  temperature: K
levels:
  - [0, 1]
  - [100, 3]
  - [250, 5]
`

func writeFile(dir, name, contents string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(contents), 0644)).To(Succeed())
	return path
}

var _ = Describe("Loader", func() {
	var (
		l   *Loader
		dir string
	)

	BeforeEach(func() {
		l = New(nil)
		dir = GinkgoT().TempDir()
	})

	Context("with a well-formed JSON file", func() {
		It("should load levels, units and the display name", func() {
			path := writeFile(dir, "test1.json", wellFormed)

			d, err := l.Load(path)
			Expect(err).NotTo(HaveOccurred())

			n, states := d.NumLevels()
			Expect(n).To(Equal(3))
			Expect(states).To(Equal(9.0))
			Expect(d.KB()).To(Equal(0.695031))
			Expect(d.Filename()).To(Equal("test1"))
			Expect(d.Energies()).To(Equal([]float64{0, 100, 250}))

			units, ok := d.Units()
			Expect(ok).To(BeTrue())
			Expect(units).To(Equal(thermo.Units{Energy: "cm^-1", Temperature: "K"}))
		})
	})

	Context("with a YAML file", func() {
		It("should decode the same record", func() {
			path := writeFile(dir, "test1.yaml", wellFormedYAML)

			d, err := l.Load(path)
			Expect(err).NotTo(HaveOccurred())

			n, states := d.NumLevels()
			Expect(n).To(Equal(3))
			Expect(states).To(Equal(9.0))
			units, ok := d.Units()
			Expect(ok).To(BeTrue())
			Expect(units.Energy).To(Equal("cm^-1"))
		})
	})

	Context("with single-value levels", func() {
		It("should default the degeneracy to 1", func() {
			d, err := l.Decode([]byte(`{"format_version": 1, "k_B": 1, "levels": [[0], [1.5], [3, 2]]}`), FormatJSON, "defaults")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Degeneracies()).To(Equal([]float64{1, 1, 2}))
			Expect(d.Filename()).To(Equal("defaults"))
		})

		It("should ignore values past the degeneracy", func() {
			d, err := l.Decode([]byte(`{"format_version": 1, "k_B": 1, "levels": [[0, 2, "note"]]}`), FormatJSON, "extra")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Degeneracies()).To(Equal([]float64{2}))
		})
	})

	Context("with broken format metadata", func() {
		DescribeTable("should fail with a format error",
			func(contents string, cause error) {
				_, err := l.Decode([]byte(contents), FormatJSON, "broken")
				Expect(err).To(MatchError(ErrFormat))
				Expect(err).To(MatchError(cause))

				var fe *FormatError
				Expect(err).To(BeAssignableToTypeOf(fe))
			},
			Entry("missing format_version", `{"k_B": 1, "levels": []}`, ErrUnsupportedFormat),
			Entry("format_version 2", `{"format_version": 2, "k_B": 1, "levels": []}`, ErrUnsupportedFormat),
			Entry("string format_version", `{"format_version": "1", "k_B": 1, "levels": []}`, ErrUnsupportedFormat),
			Entry("missing k_B", `{"format_version": 1, "levels": []}`, ErrMissingField),
			Entry("missing levels", `{"format_version": 1, "k_B": 1}`, ErrMissingField),
			Entry("empty level", `{"format_version": 1, "k_B": 1, "levels": [[1], []]}`, ErrMalformedLevel),
			Entry("non-list level", `{"format_version": 1, "k_B": 1, "levels": [5]}`, ErrMalformedLevel),
			Entry("string degeneracy", `{"format_version": 1, "k_B": 1, "levels": [[1, "two"]]}`, ErrMalformedLevel),
		)

		It("should report the index of the malformed level", func() {
			_, err := l.Decode([]byte(`{"format_version": 1, "k_B": 1, "levels": [[1], [2], []]}`), FormatJSON, "broken")

			var mle *MalformedLevelError
			Expect(err).To(BeAssignableToTypeOf(&FormatError{}))
			Expect(errors.As(err, &mle)).To(BeTrue())
			Expect(mle.Index).To(Equal(2))
		})

		It("should wrap syntax errors as format errors", func() {
			_, err := l.Decode([]byte(`{"format_version": 1,`), FormatJSON, "truncated")
			Expect(err).To(MatchError(ErrFormat))
		})
	})

	Context("with malformed units", func() {
		DescribeTable("should load without units",
			func(units string) {
				d, err := l.Decode([]byte(`{"format_version": 1, "k_B": 1, "levels": [[0]], "units": `+units+`}`), FormatJSON, "units")
				Expect(err).NotTo(HaveOccurred())
				_, ok := d.Units()
				Expect(ok).To(BeFalse())
			},
			Entry("energy only", `{"energy": "eV"}`),
			Entry("temperature only", `{"temperature": "K"}`),
			Entry("not an object", `"eV/K"`),
			Entry("non-string label", `{"energy": 1, "temperature": "K"}`),
		)
	})

	Context("with physically inconsistent levels", func() {
		It("should return the thermo error unmodified", func() {
			_, err := l.Decode([]byte(`{"format_version": 1, "k_B": 1, "levels": [[2], [1]]}`), FormatJSON, "bad")
			Expect(err).To(MatchError(thermo.ErrNonIncreasingEnergies))
			Expect(err).NotTo(MatchError(ErrFormat))
		})

		It("should reject a non-positive k_B", func() {
			_, err := l.Decode([]byte(`{"format_version": 1, "k_B": 0, "levels": []}`), FormatJSON, "bad")
			Expect(err).To(MatchError(thermo.ErrInvalidParameter))
		})
	})

	Context("with a missing file", func() {
		It("should pass the I/O error through", func() {
			_, err := l.Load(filepath.Join(dir, "nope.json"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})

var _ = Describe("DisplayName", func() {
	It("should drop the directory and extension", func() {
		Expect(DisplayName("/data/levels/h2o.json")).To(Equal("h2o"))
		Expect(DisplayName("co2.v2.yaml")).To(Equal("co2.v2"))
		Expect(DisplayName("plain")).To(Equal("plain"))
	})
})

var _ = Describe("FormatFromPath", func() {
	It("should pick the decoder by extension", func() {
		Expect(FormatFromPath("a.yaml")).To(Equal(FormatYAML))
		Expect(FormatFromPath("a.YML")).To(Equal(FormatYAML))
		Expect(FormatFromPath("a.json")).To(Equal(FormatJSON))
		Expect(FormatFromPath("a.txt")).To(Equal(FormatJSON))
	})
})
