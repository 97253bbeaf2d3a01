package utils

// ConvertRange 将闭区间索引转换为Go切片的左闭右开区间，支持负数下标
// -1 => size-1
// both inclusive [0, 10] => left inclusive right exclusive [0, 11)
// out of bound to max inbound [size, size+1] => [-1, -1]
func ConvertRange(start int64, end int64, size int64) (int, int) {
	if start < -size {
		return -1, -1
	} else if start < 0 {
		start = size + start
	} else if start >= size {
		return -1, -1
	}
	if end < -size {
		return -1, -1
	} else if end < 0 {
		end = size + end + 1
	} else if end < size {
		end = end + 1
	} else {
		end = size
	}
	if start > end {
		return -1, -1
	}
	return int(start), int(end)
}

// ValidIndex 判断index是否在[0, limit)内
func ValidIndex(index int, limit int) bool {
	return index >= 0 && index < limit
}
