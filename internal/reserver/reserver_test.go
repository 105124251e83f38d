package reserver

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reserver", func() {
	var r *Reserver[string]

	BeforeEach(func() {
		r = New([]string{"z", "y", "x"}, "o")
	})

	Context("allocating without releases", func() {
		It("should hand out tokens in preference order, then overflow", func() {
			Expect(r.Allocate()).To(Equal("z"))
			Expect(r.Allocate()).To(Equal("y"))
			Expect(r.Allocate()).To(Equal("x"))
			Expect(r.Allocate()).To(Equal("o"))
			Expect(r.Allocate()).To(Equal("o"))
			Expect(r.Available()).To(Equal(0))
		})
	})

	Context("after releasing", func() {
		BeforeEach(func() {
			for i := 0; i < 4; i++ {
				r.Allocate()
			}
		})

		It("should preserve preference order across release and reacquire", func() {
			Expect(r.Release("z")).To(Succeed())
			Expect(r.Release("y")).To(Succeed())
			Expect(r.Release("x")).To(Succeed())

			Expect(r.Allocate()).To(Equal("z"))
			Expect(r.Allocate()).To(Equal("y"))
			Expect(r.Allocate()).To(Equal("x"))
		})

		It("should reuse the most preferred free token first", func() {
			Expect(r.Release("x")).To(Succeed())
			Expect(r.Release("y")).To(Succeed())

			Expect(r.Allocate()).To(Equal("y"))
			Expect(r.Allocate()).To(Equal("x"))
			Expect(r.Allocate()).To(Equal("o"))
		})

		It("should treat releasing a free token as a no-op", func() {
			Expect(r.Release("y")).To(Succeed())
			Expect(r.Release("y")).To(Succeed())
			Expect(r.InUse("y")).To(BeFalse())
			Expect(r.Available()).To(Equal(1))
		})
	})

	Context("with the overflow token", func() {
		It("should ignore its release", func() {
			Expect(r.Release("o")).To(Succeed())
			Expect(r.Available()).To(Equal(3))
			Expect(r.Overflow()).To(Equal("o"))
		})
	})

	Context("with a token it never issued", func() {
		It("should return ErrUnknownToken", func() {
			Expect(r.Release("w")).To(MatchError(ErrUnknownToken))
		})
	})

	Context("with no preferred tokens", func() {
		It("should always return the overflow token", func() {
			empty := New[int](nil, -1)
			Expect(empty.Allocate()).To(Equal(-1))
			Expect(empty.Release(-1)).To(Succeed())
			Expect(empty.Release(3)).To(MatchError(ErrUnknownToken))
		})
	})

	It("should not alias the preferred slice", func() {
		prefs := []string{"a", "b"}
		rr := New(prefs, "c")
		prefs[0] = "q"
		Expect(rr.Allocate()).To(Equal("a"))
		Expect(rr.InUse("a")).To(BeTrue())
	})
})
