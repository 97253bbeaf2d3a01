package list

// Consumer 遍历链表，返回false时中断遍历
type Consumer func(i int, v int) bool

// List 单链表需要实现的方法
type List interface {
	Len() int
	IsEmpty() bool
	PushFront(val int)
	PushBack(val int)
	InsertAt(index int, val int) error
	DeleteAt(index int) bool
	DeleteValue(val int) bool
	Get(index int) (int, error)
	Set(index int, val int) error
	Front() (int, bool)
	Back() (int, bool)
	PopFront() (int, bool)
	IndexOf(val int) int
	Contains(val int) bool
	ForEach(consumer Consumer)
	Range(start int, stop int) []int
	Values() []int
	Clear() int
	Render() string
}

var _ List = (*LinkedList)(nil)
