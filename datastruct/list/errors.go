package list

import (
	"errors"
	"fmt"
)

// 错误分类
var (
	ErrOutOfRange = errors.New("index out of range")
	ErrEmptyList  = errors.New("empty list")
	ErrNotFound   = errors.New("value not found")
)

// ErrorKind 诊断信息的类别
type ErrorKind string

const (
	KindOutOfRange ErrorKind = "out_of_range"
	KindEmptyList  ErrorKind = "empty_list"
	KindNotFound   ErrorKind = "not_found"
)

// OutOfRangeError 下标越界，由InsertAt、Get、Set直接返回给调用方
type OutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: index %d out of range (size=%d)", e.Op, e.Index, e.Size)
}

// Is 使 errors.Is(err, ErrOutOfRange) 成立
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(op string, index, size int) error {
	return &OutOfRangeError{Op: op, Index: index, Size: size}
}

// IsKind 判断err属于哪一类
func IsKind(err error, kind ErrorKind) bool {
	switch kind {
	case KindOutOfRange:
		return errors.Is(err, ErrOutOfRange)
	case KindEmptyList:
		return errors.Is(err, ErrEmptyList)
	case KindNotFound:
		return errors.Is(err, ErrNotFound)
	}
	return false
}

func kindOf(err error) ErrorKind {
	for _, k := range []ErrorKind{KindOutOfRange, KindEmptyList, KindNotFound} {
		if IsKind(err, k) {
			return k
		}
	}
	return ""
}
