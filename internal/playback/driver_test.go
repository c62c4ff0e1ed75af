package playback

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/step"
)

var _ = Describe("Driver", func() {
	var (
		d   *Driver
		log *step.Log
	)

	BeforeEach(func() {
		var err error
		log, err = algo.NewBubble().Run([]int{3, 1, 2})
		Expect(err).NotTo(HaveOccurred())

		d = NewDriver()
		d.Load(log)
	})

	Describe("starting", func() {
		It("moves from Idle to Playing", func() {
			Expect(d.State()).To(Equal(Idle))
			Expect(d.Start()).To(Succeed())
			Expect(d.State()).To(Equal(Playing))
		})

		It("refuses to start without a log", func() {
			empty := NewDriver()
			Expect(empty.Start()).To(MatchError(ErrNoLog))
		})

		It("refuses to start twice", func() {
			Expect(d.Start()).To(Succeed())
			Expect(d.Start()).To(HaveOccurred())
		})
	})

	Describe("ticking", func() {
		It("advances exactly one step per tick", func() {
			Expect(d.Start()).To(Succeed())
			gen := d.Generation()

			Expect(d.Tick(gen)).To(BeTrue())
			Expect(d.Cursor().Position()).To(Equal(1))

			Expect(d.Tick(gen)).To(BeTrue())
			Expect(d.Cursor().Position()).To(Equal(2))
		})

		It("drops ticks with a stale generation", func() {
			Expect(d.Start()).To(Succeed())
			stale := d.Generation()

			d.Pause()
			Expect(d.Resume()).To(Succeed())

			Expect(d.Tick(stale)).To(BeFalse())
			Expect(d.Cursor().Position()).To(Equal(0))
		})

		It("applies no tick after Pause has returned", func() {
			Expect(d.Start()).To(Succeed())
			gen := d.Generation()
			d.Pause()

			Expect(d.Tick(gen)).To(BeFalse())
			Expect(d.Cursor().Position()).To(Equal(0))
			Expect(d.State()).To(Equal(Paused))
		})

		It("applies no tick after Reset has returned", func() {
			Expect(d.Start()).To(Succeed())
			gen := d.Generation()
			Expect(d.Tick(gen)).To(BeTrue())

			d.Reset()
			Expect(d.Tick(gen)).To(BeFalse())
			Expect(d.Cursor().Position()).To(Equal(0))
			Expect(d.State()).To(Equal(Idle))
		})

		It("finishes when the cursor reaches the end", func() {
			Expect(d.Start()).To(Succeed())
			gen := d.Generation()
			for d.Tick(gen) {
			}

			Expect(d.State()).To(Equal(Finished))
			Expect(d.Cursor().AtEnd()).To(BeTrue())

			// The finishing transition invalidates the tick chain.
			Expect(d.Tick(gen)).To(BeFalse())
		})
	})

	Describe("pausing and resuming", func() {
		It("round-trips Playing -> Paused -> Playing", func() {
			Expect(d.Start()).To(Succeed())
			d.Pause()
			Expect(d.State()).To(Equal(Paused))
			Expect(d.Resume()).To(Succeed())
			Expect(d.State()).To(Equal(Playing))
		})

		It("rejects resume when not paused", func() {
			Expect(d.Resume()).To(MatchError(ErrNotPaused))
		})

		It("ignores pause outside Playing", func() {
			d.Pause()
			Expect(d.State()).To(Equal(Idle))
		})
	})

	Describe("manual stepping", func() {
		It("steps while Idle or Paused", func() {
			moved, err := d.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(moved).To(BeTrue())

			Expect(d.Start()).To(Succeed())
			d.Pause()

			moved, err = d.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(moved).To(BeTrue())
			Expect(d.Cursor().Position()).To(Equal(2))
		})

		It("rejects manual steps while Playing", func() {
			Expect(d.Start()).To(Succeed())

			_, err := d.Step()
			Expect(err).To(MatchError(ErrPlaying))
			_, err = d.StepBack()
			Expect(err).To(MatchError(ErrPlaying))
		})

		It("reports false at the boundaries", func() {
			moved, err := d.StepBack()
			Expect(err).NotTo(HaveOccurred())
			Expect(moved).To(BeFalse())

			d.Cursor().Seek(log.Len() - 1)
			moved, err = d.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(moved).To(BeFalse())
		})

		It("leaves Finished for Paused when stepping back", func() {
			Expect(d.Start()).To(Succeed())
			for d.Tick(d.Generation()) {
			}
			Expect(d.State()).To(Equal(Finished))

			moved, err := d.StepBack()
			Expect(err).NotTo(HaveOccurred())
			Expect(moved).To(BeTrue())
			Expect(d.State()).To(Equal(Paused))
		})
	})

	Describe("loading a new log", func() {
		It("replaces the cursor and returns to Idle from any state", func() {
			Expect(d.Start()).To(Succeed())
			gen := d.Generation()
			Expect(d.Tick(gen)).To(BeTrue())
			old := d.Cursor()

			next, err := algo.NewQuick().Run([]int{2, 1})
			Expect(err).NotTo(HaveOccurred())
			d.Load(next)

			Expect(d.State()).To(Equal(Idle))
			Expect(d.Cursor()).NotTo(BeIdenticalTo(old))
			Expect(d.Cursor().Position()).To(Equal(0))

			// Ticks from the torn-down pairing never apply.
			Expect(d.Tick(gen)).To(BeFalse())
		})
	})

	Describe("speed", func() {
		It("defaults to medium and clamps at the extremes", func() {
			Expect(d.Speed()).To(Equal(Medium))

			d.SetSpeed(d.Speed().Faster().Faster().Faster())
			Expect(d.Speed()).To(Equal(VeryFast))
			Expect(d.Interval()).To(Equal(VeryFast.Interval()))
		})
	})
})
