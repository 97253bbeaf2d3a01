package demo

import (
	"fmt"
	"io"

	"linkedList/config"
	"linkedList/datastruct/list"
)

type scenario func(w io.Writer) error

var scenarios = map[string]scenario{
	"task1": pushAndDeleteAt,
	"task2": insertAndDeleteValue,
	"task3": errorHandling,
}

// Run 运行指定的演示场景，config.TaskAll 表示按顺序全部运行
func Run(w io.Writer, task string) error {
	if task == config.TaskAll {
		for _, name := range config.Tasks {
			if err := scenarios[name](w); err != nil {
				return err
			}
		}
		return nil
	}
	s, ok := scenarios[task]
	if !ok {
		return fmt.Errorf("demo: unknown task %q", task)
	}
	return s(w)
}

func divider(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

func pushAndDeleteAt(w io.Writer) error {
	divider(w, "Test 1: push_front/back and delete_at")
	l := list.Make()
	l.PushBack(10)
	l.PushBack(20)
	l.PushFront(5)
	if err := l.Print(w); err != nil {
		return err
	}

	l.DeleteAt(1)
	return l.Print(w)
}

func insertAndDeleteValue(w io.Writer) error {
	divider(w, "Test 2: insert_at and delete_value")
	l := list.Make(1, 3)
	if err := l.InsertAt(1, 2); err != nil {
		return err
	}
	if err := l.Print(w); err != nil {
		return err
	}

	l.DeleteValue(2)
	if err := l.Print(w); err != nil {
		return err
	}

	// not found
	l.DeleteValue(42)
	return l.Print(w)
}

func errorHandling(w io.Writer) error {
	divider(w, "Test 3: error handling")
	l := list.Make()

	ok := l.DeleteAt(0)
	fmt.Fprintf(w, "delete_at on empty returned: %t\n", ok)

	if err := l.InsertAt(1, 99); err != nil {
		fmt.Fprintf(w, "Caught error: %v\n", err)
	}
	if err := l.InsertAt(0, 99); err != nil {
		return err
	}
	if err := l.Print(w); err != nil {
		return err
	}

	ok = l.DeleteAt(5)
	fmt.Fprintf(w, "delete_at(5) returned: %t\n", ok)
	return l.Print(w)
}
