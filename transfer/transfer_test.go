package transfer

import (
	"errors"
	"math"
	"testing"

	"github.com/weaming/color-transfer-go/colorspace"
)

// patternLab 生成确定性的 Lab 测试图像，样本位于 [40, 230)
func patternLab(width, height, seed int) *colorspace.LabImage {
	img := colorspace.NewLabImage(width, height)
	for i := 0; i < width*height; i++ {
		img.Pix[i*3] = float64(40 + (i*13+seed)%150)
		img.Pix[i*3+1] = float64(60 + (i*7+seed*3)%100)
		img.Pix[i*3+2] = float64(90 + (i*29+seed*5)%80)
	}
	return img
}

func patternRGB(width, height int) *colorspace.RGBImage {
	img := colorspace.NewRGBImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = uint8((i*37 + i*i*11) % 256)
	}
	return img
}

func assertLab(t *testing.T, got *colorspace.LabImage, want ...[3]float64) {
	t.Helper()
	for i, w := range want {
		for c := 0; c < 3; c++ {
			if g := got.Pix[i*3+c]; g != w[c] {
				t.Errorf("pixel %d channel %d: got %v, want %v", i, c, g, w[c])
			}
		}
	}
}

func TestTransferLabHandComputed(t *testing.T) {
	// 源: L 150±50, a 133±5, b 70±10
	source := labImage(2, 2,
		[3]float64{100, 128, 60},
		[3]float64{100, 128, 60},
		[3]float64{200, 138, 80},
		[3]float64{200, 138, 80},
	)
	// 目标: L 60±10, a 130±10, b 20±10
	target := labImage(2, 2,
		[3]float64{50, 120, 10},
		[3]float64{50, 120, 10},
		[3]float64{70, 140, 30},
		[3]float64{70, 140, 30},
	)

	t.Run("default", func(t *testing.T) {
		out, err := TransferLab(source, target, Options{})
		if err != nil {
			t.Fatal(err)
		}
		// (50-60)*(50/10)+150 = 100, (120-130)*(5/10)+133 = 128, ...
		assertLab(t, out,
			[3]float64{100, 128, 60},
			[3]float64{100, 128, 60},
			[3]float64{200, 138, 80},
			[3]float64{200, 138, 80},
		)
	})

	t.Run("inverse scale", func(t *testing.T) {
		out, err := TransferLab(source, target, Options{InverseScale: true})
		if err != nil {
			t.Fatal(err)
		}
		// (50-60)*(10/50)+150 = 148, (120-130)*(10/5)+133 = 113, ...
		assertLab(t, out,
			[3]float64{148, 113, 60},
			[3]float64{148, 113, 60},
			[3]float64{152, 153, 80},
			[3]float64{152, 153, 80},
		)
	})
}

func TestTransferLabIdentity(t *testing.T) {
	img := patternLab(9, 7, 1)
	out, err := TransferLab(img, img, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range img.Pix {
		if math.Abs(out.Pix[i]-img.Pix[i]) > 1 {
			t.Fatalf("sample %d: got %v, want %v", i, out.Pix[i], img.Pix[i])
		}
	}
}

func TestTransferLabChannelIndependence(t *testing.T) {
	source := patternLab(6, 5, 2)
	target := patternLab(4, 8, 7)

	base, err := TransferLab(source, target, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// 只改变源图像 a 通道的统计量
	shifted := colorspace.NewLabImage(source.Width, source.Height)
	copy(shifted.Pix, source.Pix)
	for i := 1; i < len(shifted.Pix); i += 3 {
		shifted.Pix[i] = shifted.Pix[i]*0.5 + 20
	}

	out, err := TransferLab(shifted, target, Options{})
	if err != nil {
		t.Fatal(err)
	}

	changed := false
	for i := range out.Pix {
		switch i % 3 {
		case 1:
			if out.Pix[i] != base.Pix[i] {
				changed = true
			}
		default:
			if out.Pix[i] != base.Pix[i] {
				t.Fatalf("sample %d (channel %d) changed: %v -> %v", i, i%3, base.Pix[i], out.Pix[i])
			}
		}
	}
	if !changed {
		t.Error("a channel did not change")
	}
}

func TestTransferLabRangeAndQuantization(t *testing.T) {
	// 源的分布远宽于目标，结果需要裁剪
	source := labImage(2, 2,
		[3]float64{0, 0, 0},
		[3]float64{255, 255, 255},
		[3]float64{0, 0, 0},
		[3]float64{255, 255, 255},
	)
	target := labImage(2, 2,
		[3]float64{100, 100, 100},
		[3]float64{101, 100, 100},
		[3]float64{100, 100, 100},
		[3]float64{110, 120, 130},
	)

	out, err := TransferLab(source, target, Options{})
	if err != nil {
		t.Fatal(err)
	}

	saturated := false
	for i, v := range out.Pix {
		if v < 0 || v > 255 || v != math.Trunc(v) {
			t.Errorf("sample %d = %v is not an 8-bit value", i, v)
		}
		if v == 255 {
			saturated = true
		}
	}
	if !saturated {
		t.Error("expected samples clipped to 255")
	}
}

func TestTransferLabFlatTargetChannel(t *testing.T) {
	// 目标 L 通道恒定：0 * Inf = NaN，截断后为 0
	source := labImage(2, 1, [3]float64{10, 20, 30}, [3]float64{200, 100, 50})
	target := labImage(3, 1,
		[3]float64{80, 50, 60},
		[3]float64{80, 70, 90},
		[3]float64{80, 90, 10},
	)

	out, err := TransferLab(source, target, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if l := out.Pix[i*3]; l != 0 {
			t.Errorf("pixel %d: L = %v, want 0", i, l)
		}
	}
	assertLab(t, out,
		[3]float64{0, 11, 42},
		[3]float64{0, 60, 51},
		[3]float64{0, 108, 26},
	)
}

func TestTransferLabFlatBothChannels(t *testing.T) {
	flat := labImage(2, 1, [3]float64{80, 128, 128}, [3]float64{80, 128, 128})
	out, err := TransferLab(flat, flat, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// 0/0 = NaN
	for i, v := range out.Pix {
		if v != 0 {
			t.Errorf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestTransferLabInverseScaleFlatSource(t *testing.T) {
	// 源 L 通道恒定时比例为 Inf，偏离均值的样本饱和到 0 或 255
	source := labImage(2, 1, [3]float64{80, 20, 30}, [3]float64{80, 100, 50})
	target := labImage(3, 1,
		[3]float64{50, 50, 60},
		[3]float64{150, 70, 90},
		[3]float64{100, 90, 10},
	)

	out, err := TransferLab(source, target, Options{InverseScale: true})
	if err != nil {
		t.Fatal(err)
	}
	assertLab(t, out,
		[3]float64{0, 51, 61},
		[3]float64{255, 60, 160},
		[3]float64{0, 68, 0},
	)
}

func TestTransferLabInvalid(t *testing.T) {
	ok := patternLab(2, 2, 0)
	cases := []struct {
		name           string
		source, target *colorspace.LabImage
		want           error
	}{
		{"nil source", nil, ok, colorspace.ErrInvalidImage},
		{"empty target", ok, colorspace.NewLabImage(0, 3), colorspace.ErrEmptyImage},
		{"short buffer", &colorspace.LabImage{Width: 2, Height: 2, Pix: make([]float64, 5)}, ok, colorspace.ErrInvalidImage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := TransferLab(tc.source, tc.target, Options{}); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTransferShape(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 5}, {7, 2}, {16, 9}}
	for _, s := range sizes {
		for _, tg := range sizes {
			out, err := Transfer(patternRGB(s[0], s[1]), patternRGB(tg[0], tg[1]), Options{})
			if err != nil {
				t.Fatal(err)
			}
			if out.Width != tg[0] || out.Height != tg[1] || len(out.Pix) != tg[0]*tg[1]*3 {
				t.Errorf("source %v target %v: got %dx%d", s, tg, out.Width, out.Height)
			}
		}
	}
}

func TestTransferIdentity(t *testing.T) {
	img := patternRGB(7, 5)
	orig := append([]uint8(nil), img.Pix...)

	out, err := Transfer(img, img, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// 8-bit Lab 往返本身有量化误差，以往返结果为基准
	roundTrip := colorspace.ToRGB(colorspace.ToLab(img))
	for i := range out.Pix {
		if d := math.Abs(float64(out.Pix[i]) - float64(roundTrip.Pix[i])); d > 3 {
			t.Errorf("sample %d: got %d, want %d", i, out.Pix[i], roundTrip.Pix[i])
		}
	}

	for i := range orig {
		if img.Pix[i] != orig[i] {
			t.Fatal("input modified")
		}
	}
}

func TestTransferEndToEnd2x2(t *testing.T) {
	red := [3]uint8{255, 0, 0}
	blue := [3]uint8{0, 0, 255}
	green := [3]uint8{0, 255, 0}
	yellow := [3]uint8{255, 255, 0}

	source := colorspace.NewRGBImage(2, 2)
	source.Set(0, 0, red)
	source.Set(1, 0, red)
	source.Set(0, 1, blue)
	source.Set(1, 1, blue)

	target := colorspace.NewRGBImage(2, 2)
	target.Set(0, 0, green)
	target.Set(1, 0, green)
	target.Set(0, 1, yellow)
	target.Set(1, 1, yellow)

	// 两色图像的均值为中点、标准差为半距，
	// 所以每个通道上较小的目标值映射到较小的源值，较大的映射到较大的源值
	r, b := colorspace.RGBToLab8(red), colorspace.RGBToLab8(blue)
	g, y := colorspace.RGBToLab8(green), colorspace.RGBToLab8(yellow)
	var forGreen, forYellow colorspace.Vector3
	for c := 0; c < 3; c++ {
		lo, hi := math.Min(r[c], b[c]), math.Max(r[c], b[c])
		if g[c] < y[c] {
			forGreen[c], forYellow[c] = lo, hi
		} else {
			forGreen[c], forYellow[c] = hi, lo
		}
	}

	out, err := Transfer(source, target, Options{})
	if err != nil {
		t.Fatal(err)
	}

	check := func(x, yy int, lab colorspace.Vector3) {
		t.Helper()
		want := colorspace.Lab8ToRGB(lab)
		got := out.At(x, yy)
		for c := 0; c < 3; c++ {
			if math.Abs(float64(got[c])-float64(want[c])) > 1 {
				t.Errorf("(%d,%d): got %v, want %v", x, yy, got, want)
			}
		}
	}
	check(0, 0, forGreen)
	check(1, 0, forGreen)
	check(0, 1, forYellow)
	check(1, 1, forYellow)

	// 绿色被重新着色为蓝色，黄色为红色
	if p := out.At(0, 0); p[2] < 250 || p[0] > 5 {
		t.Errorf("green pixel should become blue, got %v", p)
	}
	if p := out.At(0, 1); p[0] < 250 || p[2] > 5 {
		t.Errorf("yellow pixel should become red, got %v", p)
	}
}

func TestTransferInvalid(t *testing.T) {
	if _, err := Transfer(nil, patternRGB(2, 2), Options{}); !errors.Is(err, colorspace.ErrInvalidImage) {
		t.Errorf("nil source: got %v", err)
	}
	if _, err := Transfer(patternRGB(2, 2), colorspace.NewRGBImage(3, 0), Options{}); !errors.Is(err, colorspace.ErrEmptyImage) {
		t.Errorf("empty target: got %v", err)
	}
}
