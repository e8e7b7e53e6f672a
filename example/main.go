package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dombox/typeid"
)

func main() {
	fmt.Println("=== TypeID Examples from README ===")

	// Basic Usage Example
	basicUsageExample()

	// Parsing and Validation Example
	parsingExample()

	// UUID Interoperability Example
	uuidInteropExample()

	// JSON Example
	jsonExample()

	// Diagnostics Example
	diagnosticsExample()

	// Deterministic Generation Example
	deterministicExample()
}

// Basic Usage Example from README
func basicUsageExample() {
	fmt.Println("--- Basic Usage Example ---")

	// Generate a TypeID with a prefix
	tid, err := typeid.New("user")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Generated TypeID:", tid)
	fmt.Println("Prefix:", tid.Prefix())
	fmt.Println("Suffix:", tid.Suffix())
	fmt.Println("Timestamp:", tid.Timestamp())

	// Prefix-less identifiers are just the 26-character suffix
	bare := typeid.MustNew("")
	fmt.Println("Bare TypeID:", bare)
}

// Parsing and Validation Example from README
func parsingExample() {
	fmt.Println("--- Parsing Example ---")

	tid, err := typeid.Parse("user_01h5fskfsk4fpeqwnsyz5hj55t")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Parsed prefix:", tid.Prefix())
	fmt.Println("Parsed suffix:", tid.Suffix())

	// Invalid inputs return typed errors
	_, err = typeid.Parse("user_8zzzzzzzzzzzzzzzzzzzzzzzzz")
	fmt.Println("Overflow error:", err)
}

// UUID Interoperability Example from README
func uuidInteropExample() {
	fmt.Println("--- UUID Interop Example ---")

	tid := typeid.MustFromUUID("order", "01895f99-bf33-23ec-ebf2-b9f7cb1914ba")
	fmt.Println("From UUID:", tid)
	fmt.Println("Back to UUID:", tid.UUIDString())
	fmt.Println("Hex:", tid.Hex())
}

// JSON Example from README
func jsonExample() {
	fmt.Println("--- JSON Example ---")

	type User struct {
		ID   typeid.TypeID `json:"id"`
		Name string        `json:"name"`
	}

	user := User{ID: typeid.MustNew("user"), Name: "Alice"}

	data, err := json.Marshal(user)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("JSON:", string(data))

	var decoded User
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Decoded ID:", decoded.ID)
}

// Diagnostics Example from README
func diagnosticsExample() {
	fmt.Println("--- Diagnostics Example ---")

	for _, candidate := range []any{
		"user_01h5fskfsk4fpeqwnsyz5hj55t",
		"User_01h5fskfsk4fpeqwnsyz5hj55t",
		"_prefix_01h5fskfsk4fpeqwnsyz5hj55t",
		42,
	} {
		if diag := typeid.Explain(candidate); diag != nil {
			fmt.Printf("%v -> %s\n", candidate, diag.Kind())
		} else {
			fmt.Printf("%v -> valid\n", candidate)
		}
	}
}

// Deterministic Generation Example from README
func deterministicExample() {
	fmt.Println("--- Deterministic Generation Example ---")

	// Inject a fixed clock and random source for reproducible identifiers.
	clock := typeid.ClockFunc(func() time.Time { return time.UnixMilli(1690000000000) })
	gen := typeid.NewGeneratorWith(clock, zeroSource{})

	tid, err := gen.New("test")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Deterministic TypeID:", tid)
}

// zeroSource is a RandomSource that always returns zero bytes.
type zeroSource struct{}

func (zeroSource) Read(p []byte) error {
	for i := range p {
		p[i] = 0
	}
	return nil
}
