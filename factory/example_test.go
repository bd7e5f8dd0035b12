package factory_test

import (
	"fmt"

	"github.com/patternkit/patternkit/factory"
)

// ExampleNewButton demonstrates the factory method: the caller supplies a
// discriminant and receives a product without naming the concrete variant.
func ExampleNewButton() {
	b, err := factory.NewButton(factory.Android, "Send")
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(b.Render())

	// Output:
	// [android] button "Send"
}

// ExampleForPlatform demonstrates the abstract factory: one family instance
// yields a coherent, never-mixed product set.
func ExampleForPlatform() {
	f, err := factory.ForPlatform(factory.IOS)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(f.CreateButton("OK").Render())
	fmt.Println(f.CreateCheckbox(true).Render())

	// Output:
	// [ios] button "OK"
	// [ios] checkbox (checked)
}
