package colorspace

// Matrix3x3 表示 3x3 矩阵（行优先存储）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// 将向量各分量限制在 [min, max] 范围内
func (v Vector3) Clamp(min, max float64) Vector3 {
	result := v
	for i := range result {
		if result[i] < min {
			result[i] = min
		} else if result[i] > max {
			result[i] = max
		}
	}
	return result
}
