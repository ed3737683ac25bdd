package timedomain

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rf/internal/testutil"
	"github.com/cwbudde/algo-rf/rf/network"
)

func TestMatchedNetworkHasZeroImpulse(t *testing.T) {
	freq := testutil.UniformAxis(1e9, 9e9, 16)
	matched := testutil.MatchedThrough(t, freq, 50)

	resp, err := ImpulseResponse(matched, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range resp.Impulse {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("impulse[%d] = %v, want 0 for a matched network", i, v)
		}
	}
}

func TestConstantReflectionPeaksAtZeroTime(t *testing.T) {
	// A frequency-flat reflection is a reflection at the reference plane:
	// the impulse energy concentrates in the first sample.
	freq := testutil.UniformAxis(1e9, 9e9, 16)
	device := testutil.ReflectiveDevice(t, freq, 0.5, 0.8, 50)

	resp, err := ImpulseResponse(device, Options{Window: false})
	if err != nil {
		t.Fatal(err)
	}

	peak := math.Abs(resp.Impulse[0])
	for i, v := range resp.Impulse[1:] {
		if math.Abs(v) >= peak {
			t.Fatalf("impulse[%d] = %v exceeds the t=0 sample %v", i+1, v, peak)
		}
	}
}

func TestResponseGeometry(t *testing.T) {
	freq := testutil.UniformAxis(1e9, 9e9, 16)
	device := testutil.ReflectiveDevice(t, freq, 0.5, 0.8, 50)

	resp, err := ImpulseResponse(device, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	n := len(resp.Impulse)
	if n < 32 || n&(n-1) != 0 {
		t.Errorf("impulse length %d, want a power of two of at least twice the trace", n)
	}

	df := freq[1] - freq[0]
	want := 1 / (float64(n) * df)
	if math.Abs(resp.TimeStep-want) > want*1e-12 {
		t.Errorf("TimeStep = %v, want %v", resp.TimeStep, want)
	}
}

func TestStepResponseIsRunningSum(t *testing.T) {
	freq := testutil.UniformAxis(1e9, 9e9, 16)
	device := testutil.ReflectiveDevice(t, freq, 0.3+0.1i, 0.9, 50)

	resp, err := ImpulseResponse(device, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	step := resp.Step()
	if len(step) != len(resp.Impulse) {
		t.Fatalf("step length %d, impulse length %d", len(step), len(resp.Impulse))
	}

	sum := 0.0
	for i, v := range resp.Impulse {
		sum += v
		if math.IsNaN(step[i]) || math.IsInf(step[i], 0) {
			t.Fatalf("step[%d] = %v, want finite", i, step[i])
		}
		if math.Abs(step[i]-sum) > 1e-12 {
			t.Fatalf("step[%d] = %v, want running sum %v", i, step[i], sum)
		}
	}
}

func TestWindowReducesBandEdgeRinging(t *testing.T) {
	freq := testutil.UniformAxis(1e9, 9e9, 32)
	device := testutil.ReflectiveDevice(t, freq, 0.5, 0.8, 50)

	raw, err := ImpulseResponse(device, Options{Window: false})
	if err != nil {
		t.Fatal(err)
	}
	windowed, err := ImpulseResponse(device, Options{Window: true})
	if err != nil {
		t.Fatal(err)
	}

	// Tail energy away from the main lobe drops under the Hann taper.
	tailEnergy := func(impulse []float64) float64 {
		e := 0.0
		for _, v := range impulse[len(impulse)/4 : len(impulse)/2] {
			e += v * v
		}
		return e
	}
	if tailEnergy(windowed.Impulse) >= tailEnergy(raw.Impulse) {
		t.Error("windowed tail energy not below unwindowed tail energy")
	}
}

func TestImpulseResponseErrors(t *testing.T) {
	if _, err := ImpulseResponse(nil, DefaultOptions()); !errors.Is(err, ErrNilNetwork) {
		t.Errorf("nil network: error = %v, want ErrNilNetwork", err)
	}

	single, err := network.NewOnePort([]float64{1e9}, []complex128{0.5}, 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ImpulseResponse(single, DefaultOptions()); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("single point: error = %v, want ErrTooFewPoints", err)
	}

	skewed, err := network.NewOnePort([]float64{1e9, 2e9, 5e9}, testutil.ConstantTrace(0.5, 3), 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ImpulseResponse(skewed, DefaultOptions()); !errors.Is(err, ErrNonUniformGrid) {
		t.Errorf("non-uniform grid: error = %v, want ErrNonUniformGrid", err)
	}
}
