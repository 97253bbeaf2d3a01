package list

import (
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Render 格式为 [5 -> 10 -> 20] (size=3)
func (list *LinkedList) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := list.first; n != nil; n = n.next {
		b.WriteString(strconv.Itoa(n.val))
		if n.next != nil {
			b.WriteString(" -> ")
		}
	}
	b.WriteString("] (size=")
	b.WriteString(strconv.Itoa(list.size))
	b.WriteByte(')')
	return b.String()
}

func (list *LinkedList) String() string {
	return list.Render()
}

// Print 输出到正常的输出通道
func (list *LinkedList) Print(w io.Writer) error {
	_, err := io.WriteString(w, list.Render()+"\n")
	return err
}

// Fingerprint 按顺序对所有元素做murmur3哈希，元素序列相同则结果相同
func (list *LinkedList) Fingerprint() uint64 {
	h := murmur3.New64()
	buf := make([]byte, 8)
	for n := list.first; n != nil; n = n.next {
		binary.LittleEndian.PutUint64(buf, uint64(n.val))
		h.Write(buf)
	}
	return h.Sum64()
}
