package deconv_test

import (
	"fmt"

	"github.com/cwbudde/algo-hrf/deconv"
	"github.com/cwbudde/algo-hrf/deconv/basis"
	"github.com/cwbudde/algo-hrf/dsp/core"
)

func ExampleEventType_CreateDesignMatrix() {
	ctx, err := deconv.NewContext(120, core.WithSampleDuration(2))
	if err != nil {
		panic(err)
	}

	ev, err := deconv.New(ctx, "face", []float64{10, 52, 96, 150, 188},
		deconv.WithBasis(basis.SetFourier, 4),
		deconv.WithInterval(0, 20))
	if err != nil {
		panic(err)
	}

	x, err := ev.CreateDesignMatrix()
	if err != nil {
		panic(err)
	}

	rows, cols := x.Dims()
	fmt.Println(rows, cols)
	fmt.Println(x.Columns[0], x.Columns[4])

	// Output:
	// 120 5
	// face/intercept/intercept face/intercept/cos_2
}

func ExampleEventType_BetasToTimecourses() {
	ctx, _ := deconv.NewContext(50)
	ev, _ := deconv.New(ctx, "tone", []float64{5, 21, 33}, deconv.WithInterval(0, 4))

	if _, err := ev.BetasToTimecourses(); err != nil {
		fmt.Println(err)
	}

	_, _ = ev.CreateDesignMatrix()
	_ = ev.AttachBetas([]float64{0, 1, 0.5, 0.25}, nil)

	curves, _ := ev.BetasToTimecourses()
	fmt.Println(ev.State(), curves[deconv.InterceptName])

	// Output:
	// deconv: no betas attached
	// timecourses-computed [0 1 0.5 0.25]
}
