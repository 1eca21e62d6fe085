package skiplist_test

import (
	"fmt"

	skiplist "github.com/kiplingw/SkipList"
)

func ExampleSkipList_Insert() {
	l := skiplist.New[int, string]()
	l.Insert(1, "one")
	l.Insert(2, "two")
	l.Insert(2, "TWO")
	fmt.Println(l.Len())
	// Output: 2
}

func ExampleSkipList_Search() {
	l := skiplist.New[int, string]()
	l.Insert(1, "one")
	l.Insert(2, "two")
	it := l.Search(1)
	fmt.Printf("%s %t\n", it.Value(), it == l.End())
	fmt.Println(l.Search(9) == l.End())
	// Output: one false
	// true
}

func ExampleSkipList_Delete() {
	l := skiplist.New[int, string]()
	l.Insert(1, "one")
	l.Insert(2, "two")
	fmt.Println(l.Delete(1))
	fmt.Println(l.Delete(9))
	fmt.Println(l.Len())
	// Output: 1
	// 0
	// 1
}

func ExampleSkipList_Begin() {
	l := skiplist.New[int, string]()
	l.Insert(3, "three")
	l.Insert(1, "one")
	l.Insert(2, "two")
	for it := l.Begin(); it != l.End(); it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleSkipList_All() {
	l := skiplist.New[string, int]()
	l.Insert("b", 2)
	l.Insert("a", 1)
	for k, v := range l.All() {
		fmt.Printf("%s=%d ", k, v)
	}
	fmt.Println()
	// Output: a=1 b=2
}

func ExampleNewFunc() {
	l := skiplist.NewFunc[int, string](func(a, b int) bool { return a > b })
	l.Insert(1, "one")
	l.Insert(3, "three")
	l.Insert(2, "two")
	for k := range l.All() {
		fmt.Printf("%d ", k)
	}
	fmt.Println()
	// Output: 3 2 1
}
