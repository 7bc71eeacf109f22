package proj_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/michaelkirk/proj"
)

func TestConvertSlice(t *testing.T) {
	ctx := proj.NewContext()
	defer ctx.Close()

	ftToM, err := ctx.CRSToCRS("EPSG:2230", "EPSG:26946", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ftToM.Close()

	in := []proj.Coord{
		proj.XY(4760096.421921, 3744293.729449),
		proj.XY(4760197.421921, 3744394.729449),
	}
	out, err := ftToM.ConvertSlice(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	s := fmt.Sprintf("%.2f %.2f", out[0].X, out[1].Y)
	s1 := "1450880.29 1141293.80"
	if s != s1 {
		t.Fatalf("ConvertSlice = %v, want %v", s, s1)
	}

	// bulk output must match the single-point path, element by element
	for i, c := range in {
		single, err := ftToM.Convert(c)
		if err != nil {
			t.Fatal(err)
		}
		if single != out[i] {
			t.Errorf("element %d: bulk %v, single %v", i, out[i], single)
		}
	}
}

func TestConvertSliceEmpty(t *testing.T) {
	ctx := proj.NewContext()
	defer ctx.Close()

	ftToM, err := ctx.CRSToCRS("EPSG:2230", "EPSG:26946", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ftToM.Close()

	out, err := ftToM.ConvertSlice(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("ConvertSlice(nil) = %v, want empty", out)
	}
}

func TestProjectSlice(t *testing.T) {
	ctx := proj.NewContext()
	defer ctx.Close()

	pj, err := ctx.Pipeline(stereo70)
	if err != nil {
		t.Fatal(err)
	}
	defer pj.Close()

	out, err := pj.ProjectSlice([]proj.Coord{proj.XY(0.436332, 0.802851)}, false)
	if err != nil {
		t.Fatal(err)
	}
	s := fmt.Sprintf("%.3f %.3f", out[0].X, out[0].Y)
	s1 := "500119.704 500027.779"
	if s != s1 {
		t.Fatalf("ProjectSlice = %v, want %v", s, s1)
	}

	back, err := pj.ProjectSlice(out, true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back[0].X-0.436332) > 1e-6 || math.Abs(back[0].Y-0.802851) > 1e-6 {
		t.Fatalf("inverse ProjectSlice = %v, want 0.436332 0.802851", back[0])
	}
}

// A point outside the operation's domain is marked invalid in place; the
// elements after it still transform. The trailing points deliberately map
// to values far from their inputs, so an untransformed pass-through would
// be caught.
func TestConvertSlicePartialFailure(t *testing.T) {
	ctx := proj.NewContext()
	defer ctx.Close()

	pj, err := ctx.Pipeline("+proj=geos +lon_0=0.00 +lat_0=0.00 +a=6378169.00 +b=6356583.80 +h=35785831.0")
	if err != nil {
		t.Fatal(err)
	}
	defer pj.Close()

	in := []proj.Coord{
		proj.XY(4760096.421921, 3744293.729449), // out of range
		proj.XY(0.01, 0.02),
		proj.XY(4760096.421921, 3744293.729449), // out of range again
		proj.XY(-0.02, 0.01),
	}
	out, err := pj.ConvertSlice(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	if out[0].Valid() {
		t.Errorf("out-of-range element came back valid: %v", out[0])
	}
	if out[2].Valid() {
		t.Errorf("out-of-range element came back valid: %v", out[2])
	}
	for _, i := range []int{1, 3} {
		want, err := pj.Convert(in[i])
		if err != nil {
			t.Fatal(err)
		}
		if out[i] != want {
			t.Errorf("element %d: bulk %v, single %v", i, out[i], want)
		}
		if out[i] == in[i] {
			t.Errorf("element %d returned untransformed: %v", i, out[i])
		}
	}
}
