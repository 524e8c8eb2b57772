package colorspace

// 标准色彩空间定义
// 常量取自 OpenCV 的 sRGB/Lab 转换，保证 8-bit Lab 结果与其一致

// D65 白点 (CIE 标准光源 D65，2° 观察者)
var D65WhitePoint = Vector3{0.950456, 1.0, 1.088754}

// sRGB 到 XYZ (D65) 的转换矩阵
// 每行之和等于白点对应分量，白色映射到 L=100, a=b=0
var SRGBToXYZ = Matrix3x3{
	0.412453, 0.357580, 0.180423,
	0.212671, 0.715160, 0.072169,
	0.019334, 0.119193, 0.950227,
}

// XYZ (D65) 到 sRGB 的转换矩阵
var XYZToSRGB = Matrix3x3{
	3.240479, -1.53715, -0.498535,
	-0.969256, 1.875991, 0.041556,
	0.055648, -0.204043, 1.057311,
}

// 8-bit Lab 编码参数
const (
	// LabLightnessScale L* [0,100] → [0,255]
	LabLightnessScale = 255.0 / 100.0
	// LabChromaOffset a*/b* 的偏移量
	LabChromaOffset = 128.0
	// MaxSample 8-bit 通道最大值
	MaxSample = 255.0
)
