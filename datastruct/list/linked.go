package list

import (
	"linkedList/lib/logger"
	"linkedList/lib/utils"

	"go.uber.org/zap"
)

// noCopy 配合 go vet 的 copylocks 检查，LinkedList 首次使用后不能再按值拷贝
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// LinkedList 单链表，不维护尾指针，不是线程安全的
type LinkedList struct {
	_ noCopy

	first *node
	size  int

	log *zap.Logger
}

type node struct {
	val  int
	next *node
}

func Make(vals ...int) *LinkedList {
	list := &LinkedList{}
	for _, v := range vals {
		list.PushBack(v)
	}
	return list
}

// WithLogger 指定诊断信息的输出，nil 表示使用全局 logger
func (list *LinkedList) WithLogger(l *zap.Logger) *LinkedList {
	list.log = l
	return list
}

func (list *LinkedList) Len() int {
	if list == nil {
		panic("list is nil")
	}
	return list.size
}

func (list *LinkedList) IsEmpty() bool {
	return list.Len() == 0
}

func (list *LinkedList) PushFront(val int) {
	if list == nil {
		panic("list is nil")
	}
	list.first = &node{val: val, next: list.first}
	list.size++
}

// PushBack 每次都从头遍历到最后一个节点
func (list *LinkedList) PushBack(val int) {
	if list == nil {
		panic("list is nil")
	}
	n := &node{val: val}
	if list.first == nil {
		// empty list
		list.first = n
	} else {
		last := list.first
		for last.next != nil {
			last = last.next
		}
		last.next = n
	}
	list.size++
}

// nodeAt 顺序查找index对应的节点，index必须在[0, size)内
func (list *LinkedList) nodeAt(op string, index int) (*node, error) {
	if !utils.ValidIndex(index, list.size) {
		return nil, outOfRange(op, index, list.size)
	}
	n := list.first
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n, nil
}

// InsertAt 在index位置插入val，index的合法范围是[0, size]
func (list *LinkedList) InsertAt(index int, val int) error {
	if list == nil {
		panic("list is nil")
	}
	if !utils.ValidIndex(index, list.size+1) {
		return outOfRange("insert_at", index, list.size)
	}
	if index == 0 {
		list.PushFront(val)
		return nil
	}
	if index == list.size {
		list.PushBack(val)
		return nil
	}
	prev, err := list.nodeAt("insert_at", index-1)
	if err != nil {
		return err
	}
	prev.next = &node{val: val, next: prev.next}
	list.size++
	return nil
}

// DeleteAt 删除index位置的节点，失败时只输出诊断信息并返回false
func (list *LinkedList) DeleteAt(index int) bool {
	if list == nil {
		panic("list is nil")
	}
	if list.size == 0 {
		list.report("delete_at", ErrEmptyList, zap.Int("index", index))
		return false
	}
	if !utils.ValidIndex(index, list.size) {
		list.report("delete_at", outOfRange("delete_at", index, list.size), zap.Int("index", index))
		return false
	}
	if index == 0 {
		list.unlinkFirst()
		return true
	}
	prev, err := list.nodeAt("delete_at", index-1)
	if err != nil {
		list.report("delete_at", err, zap.Int("index", index))
		return false
	}
	list.unlinkAfter(prev)
	return true
}

// DeleteValue 从头开始删除第一个等于val的节点
func (list *LinkedList) DeleteValue(val int) bool {
	if list == nil {
		panic("list is nil")
	}
	if list.size == 0 {
		list.report("delete_value", ErrEmptyList, zap.Int("value", val))
		return false
	}
	if list.first.val == val {
		list.unlinkFirst()
		return true
	}
	for prev := list.first; prev.next != nil; prev = prev.next {
		if prev.next.val == val {
			list.unlinkAfter(prev)
			return true
		}
	}
	list.report("delete_value", ErrNotFound, zap.Int("value", val))
	return false
}

func (list *LinkedList) unlinkFirst() *node {
	n := list.first
	list.first = n.next
	n.next = nil // for gc
	list.size--
	return n
}

func (list *LinkedList) unlinkAfter(prev *node) *node {
	n := prev.next
	prev.next = n.next
	n.next = nil
	list.size--
	return n
}

func (list *LinkedList) Get(index int) (int, error) {
	if list == nil {
		panic("list is nil")
	}
	n, err := list.nodeAt("get", index)
	if err != nil {
		return 0, err
	}
	return n.val, nil
}

func (list *LinkedList) Set(index int, val int) error {
	if list == nil {
		panic("list is nil")
	}
	n, err := list.nodeAt("set", index)
	if err != nil {
		return err
	}
	n.val = val
	return nil
}

func (list *LinkedList) Front() (int, bool) {
	if list == nil || list.first == nil {
		return 0, false
	}
	return list.first.val, true
}

func (list *LinkedList) Back() (int, bool) {
	if list == nil || list.first == nil {
		return 0, false
	}
	n := list.first
	for n.next != nil {
		n = n.next
	}
	return n.val, true
}

// PopFront 移除并返回第一个元素
func (list *LinkedList) PopFront() (int, bool) {
	if list == nil {
		panic("list is nil")
	}
	if list.first == nil {
		return 0, false
	}
	return list.unlinkFirst().val, true
}

// IndexOf 返回第一个等于val的下标，不存在返回-1
func (list *LinkedList) IndexOf(val int) int {
	index := -1
	list.ForEach(func(i int, v int) bool {
		if v == val {
			index = i
			return false
		}
		return true
	})
	return index
}

func (list *LinkedList) Contains(val int) bool {
	return list.IndexOf(val) >= 0
}

func (list *LinkedList) ForEach(consumer Consumer) {
	if list == nil {
		panic("list is nil")
	}
	i := 0
	for n := list.first; n != nil; n = n.next {
		if !consumer(i, n.val) {
			break
		}
		i++
	}
}

// Range 返回[start, stop]之间的元素，两端都包含，支持负数下标
// -1 => size-1
func (list *LinkedList) Range(start int, stop int) []int {
	if list == nil {
		panic("list is nil")
	}
	from, to := utils.ConvertRange(int64(start), int64(stop), int64(list.size))
	if from < 0 {
		return []int{}
	}
	slice := make([]int, 0, to-from)
	list.ForEach(func(i int, v int) bool {
		if i >= to {
			return false
		}
		if i >= from {
			slice = append(slice, v)
		}
		return true
	})
	return slice
}

func (list *LinkedList) Values() []int {
	return list.Range(0, -1)
}

// Clone 深拷贝，新链表和原链表不共享任何节点
func (list *LinkedList) Clone() *LinkedList {
	if list == nil {
		panic("list is nil")
	}
	dst := &LinkedList{log: list.log}
	var last *node
	for n := list.first; n != nil; n = n.next {
		c := &node{val: n.val}
		if last == nil {
			dst.first = c
		} else {
			last.next = c
		}
		last = c
	}
	dst.size = list.size
	return dst
}

// Clear 逐个断开节点，不使用递归，返回释放的节点数
func (list *LinkedList) Clear() int {
	if list == nil {
		panic("list is nil")
	}
	released := 0
	for list.first != nil {
		n := list.first
		list.first = n.next
		n.next = nil
		released++
	}
	list.size = 0
	return released
}

func (list *LinkedList) diag() *zap.Logger {
	if list.log != nil {
		return list.log
	}
	return logger.L()
}

// report 把失败原因写到诊断通道，不影响调用方的控制流
func (list *LinkedList) report(op string, err error, fields ...zap.Field) {
	kind := kindOf(err)
	fields = append(fields,
		zap.String("kind", string(kind)),
		zap.Int("size", list.size),
		zap.Error(err),
	)
	l := list.diag()
	if kind == KindNotFound {
		l.Info("list."+op, fields...)
		return
	}
	l.Error("list."+op, fields...)
}
