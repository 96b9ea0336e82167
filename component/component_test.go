package component

import (
	"math"
	"strings"
	"testing"
)

func testGeneral(id, portA, portB string) General {
	return General{
		ID:          id,
		Orientation: Vertical,
		AirType:     EA,
		PortA:       portA,
		PortB:       portB,
	}
}

func TestCircledArea(t *testing.T) {
	c := NewCircled(testGeneral("1", "a", "b"), 500, 1000)
	if c.Area != 0.19634954084936207 {
		t.Errorf("area = %v, want 0.19634954084936207", c.Area)
	}
}

func TestRectangledArea(t *testing.T) {
	c := NewRectangled(testGeneral("1", "a", "b"), 500, 500, 1000)
	if c.Area != 0.25 {
		t.Errorf("area = %v, want 0.25", c.Area)
	}
}

func TestGeneralString(t *testing.T) {
	g := testGeneral("1", "PortA", "PortB")
	want := "id: 1\nPort A: PortA, Port B: PortB"
	if !strings.HasSuffix(g.String(), want) {
		t.Errorf("String() = %q, want suffix %q", g.String(), want)
	}
}

func TestBowCircled(t *testing.T) {
	conn := NewCircled(testGeneral("1", "a", "b"), 500, 1000)
	bow, err := NewBow(conn, 90)
	if err != nil {
		t.Fatalf("NewBow: %v", err)
	}

	// tan(45°)·500 overwrites the imported connector length.
	if conn.Length != 500 {
		t.Errorf("connector length = %v, want 500", conn.Length)
	}

	// r/d = (500·cos45 + 500·sin45)/500 = √2, nearest round table key 1.50.
	if bow.ZetaValue != 0.24 {
		t.Errorf("zeta = %v, want 0.24", bow.ZetaValue)
	}

	found := false
	for _, bp := range zetaRoundBow {
		if bp.Zeta == bow.ZetaValue {
			found = true
		}
	}
	if !found {
		t.Errorf("zeta %v not a round bow table coefficient", bow.ZetaValue)
	}
}

func TestBowRectangledUsesOrientation(t *testing.T) {
	horizontal := testGeneral("1", "a", "b")
	horizontal.Orientation = Horizontal
	connH := NewRectangled(horizontal, 600, 200, 0)
	bowH, err := NewBow(connH, 90)
	if err != nil {
		t.Fatalf("NewBow horizontal: %v", err)
	}
	if connH.Length != 600 {
		t.Errorf("horizontal bend length = %v, want width 600", connH.Length)
	}

	connV := NewRectangled(testGeneral("2", "b", "c"), 600, 200, 0)
	bowV, err := NewBow(connV, 90)
	if err != nil {
		t.Fatalf("NewBow vertical: %v", err)
	}
	if connV.Length != 200 {
		t.Errorf("vertical bend length = %v, want height 200", connV.Length)
	}

	// Both r/d factors are √2, so both resolve over the same rectangle table.
	if bowH.ZetaValue != bowV.ZetaValue {
		t.Errorf("zeta mismatch: horizontal %v, vertical %v", bowH.ZetaValue, bowV.ZetaValue)
	}
}

func TestBowUnsupportedShape(t *testing.T) {
	conn := &Connector{General: testGeneral("1", "a", "b")}
	if _, err := NewBow(conn, 90); err != ErrUnsupportedShape {
		t.Errorf("err = %v, want ErrUnsupportedShape", err)
	}
}

func TestDuctLambdaBranches(t *testing.T) {
	conn := NewCircled(testGeneral("3", "c", "d"), 200, 0)
	duct, err := NewDuct(conn, 1.5)
	if err != nil {
		t.Fatalf("NewDuct: %v", err)
	}

	re := Reynolds(1.5, 200)
	if re >= 2300 {
		t.Fatalf("fixture broken, Re = %v", re)
	}
	if want := 0.3164 / math.Pow(re, 0.25); duct.LambdaValue != want {
		t.Errorf("lambda = %v, want %v for Re < 2300", duct.LambdaValue, want)
	}

	duct.SetLambda(3000)
	if want := 64.0 / 3000; duct.LambdaValue != want {
		t.Errorf("lambda = %v, want %v for Re >= 2300", duct.LambdaValue, want)
	}
}

func TestDuctRectangledCharacteristicDiameter(t *testing.T) {
	// 4·w²/(2w+2w) collapses to the width; the height must not leak in.
	conn := NewRectangled(testGeneral("3", "c", "d"), 600, 200, 2000)
	duct, err := NewDuct(conn, 1.0)
	if err != nil {
		t.Fatalf("NewDuct: %v", err)
	}
	diameter, err := duct.characteristicDiameter()
	if err != nil {
		t.Fatalf("characteristicDiameter: %v", err)
	}
	if diameter != 600 {
		t.Errorf("characteristic diameter = %v, want 600", diameter)
	}
}

func TestReductionZeta(t *testing.T) {
	a := NewCircled(testGeneral("5", "e", "f"), 200, 0)
	b := NewCircled(testGeneral("5", "e", "f"), 100, 0)

	narrowing, err := NewReduction(a, b, Narrowing)
	if err != nil {
		t.Fatalf("NewReduction narrowing: %v", err)
	}
	// area ratio b/a = 0.25, nearest narrowing key 0.2.
	if narrowing.ZetaValue != 0.75 {
		t.Errorf("narrowing zeta = %v, want 0.75", narrowing.ZetaValue)
	}

	extension, err := NewReduction(b, a, Extension)
	if err != nil {
		t.Fatalf("NewReduction extension: %v", err)
	}
	// area ratio a/b = 0.25, nearest extension key 0.4.
	if extension.ZetaValue != 0.125 {
		t.Errorf("extension zeta = %v, want 0.125", extension.ZetaValue)
	}

	if _, err := NewReduction(a, b, ReductionKind(0)); err != ErrUnsupportedReductionKind {
		t.Errorf("err = %v, want ErrUnsupportedReductionKind", err)
	}
}

func TestTPieceEqualAreas(t *testing.T) {
	a := NewCircled(testGeneral("4", "d", "e"), 100, 0)
	b := NewCircled(testGeneral("4", "d", "f"), 100, 0)
	tp := NewTPiece(a, b)

	if got := tp.factorV1V(); got != 0.5 {
		t.Fatalf("v1/v = %v, want 0.5", got)
	}
	// Equidistant between the 0.4 and 0.6 keys, the earlier entry wins.
	if tp.ZetaValue != 6.3 {
		t.Errorf("zeta = %v, want 6.3", tp.ZetaValue)
	}
}

func TestFlapCharacteristic(t *testing.T) {
	flap := NewFlap(NewCircled(testGeneral("9", "h", "i"), 315, 0))

	angle := flap.AdjustAngle(3600) // 1 m³/s
	if want := -634.6 + 92.88; angle != want {
		t.Errorf("angle = %v, want %v", angle, want)
	}
	if flap.AlphaAngle != angle {
		t.Errorf("stored angle = %v, want %v", flap.AlphaAngle, angle)
	}

	if got := flap.PressureDrop(0); got != 109.9 {
		t.Errorf("pressure drop at 0° = %v, want 109.9", got)
	}
	if got := flap.PressureDrop(10); got != 1.112*10+109.9 {
		t.Errorf("pressure drop at 10° = %v", got)
	}
}

func TestAirterminalZeta(t *testing.T) {
	terminal := NewAirterminal(NewCircled(testGeneral("6", "f", ""), 400, 0))
	if terminal.Zeta() != 0 {
		t.Errorf("zeta = %v, want 0", terminal.Zeta())
	}
	if terminal.Secondary() != nil {
		t.Error("air terminal must not expose a secondary connector")
	}
}
