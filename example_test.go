package hwuuid_test

import (
	"fmt"
	"slices"

	"github.com/slashdevops/hwuuid"
)

// ExampleNew demonstrates the simplest way to generate identifiers.
func ExampleNew() {
	gen, err := hwuuid.New()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	id := gen.Generate()
	fmt.Printf("Length: %d\n", len(id.String()))
	fmt.Printf("Version: %d\n", id.Version())
	fmt.Printf("RFC 4122 variant: %v\n", id.IsRFC4122())
	// Output:
	// Length: 36
	// Version: 4
	// RFC 4122 variant: true
}

// ExampleNewWithSeed shows reproducible output on the software path.
func ExampleNewWithSeed() {
	gen := hwuuid.NewWithSeed(42).SoftwareOnly()

	for range 3 {
		fmt.Println(gen.Generate())
	}
	// Output:
	// d6e2e56e-7ddf-41c1-a802-25b9b98f97a3
	// 0a7b5e0e-7f96-4cc0-8ed3-1a8a3fc4e222
	// 5519364d-8ea2-4ce7-bc4f-7f9c62dc1418
}

// ExampleNewWithEngine plugs in the 32-bit Mersenne Twister.
func ExampleNewWithEngine() {
	gen, err := hwuuid.NewWithEngine(hwuuid.NewMersenne32(42))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Println(gen.SoftwareOnly().Generate())
	// Output:
	// 66dce15f-b33d-4acb-9c03-62f30e95f52e
}

// ExampleParse round-trips an identifier through its text form.
func ExampleParse() {
	id := hwuuid.NewWithSeed(42).SoftwareOnly().Generate()

	parsed, err := hwuuid.Parse(id.String())
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Equal: %v\n", parsed == id)
	// Output:
	// Equal: true
}

// ExampleUUID_Compare sorts identifiers in byte order.
func ExampleUUID_Compare() {
	ids := []hwuuid.UUID{
		hwuuid.MustParse("d6e2e56e-7ddf-41c1-a802-25b9b98f97a3"),
		hwuuid.MustParse("0a7b5e0e-7f96-4cc0-8ed3-1a8a3fc4e222"),
		hwuuid.MustParse("5519364d-8ea2-4ce7-bc4f-7f9c62dc1418"),
	}

	slices.SortFunc(ids, hwuuid.UUID.Compare)
	for _, id := range ids {
		fmt.Println(id)
	}
	// Output:
	// 0a7b5e0e-7f96-4cc0-8ed3-1a8a3fc4e222
	// 5519364d-8ea2-4ce7-bc4f-7f9c62dc1418
	// d6e2e56e-7ddf-41c1-a802-25b9b98f97a3
}

// ExampleSyncGenerator shares one generator between goroutines.
func ExampleSyncGenerator() {
	shared := hwuuid.NewSync(hwuuid.NewWithSeed(1))

	done := make(chan hwuuid.UUID)
	for range 2 {
		go func() { done <- shared.Generate() }()
	}

	a, b := <-done, <-done
	fmt.Printf("Distinct: %v\n", a != b)
	// Output:
	// Distinct: true
}

// ExampleDetectFeatures reports which generation path a new generator uses.
func ExampleDetectFeatures() {
	fs := hwuuid.DetectFeatures()

	usesHardware := hwuuid.NewWithSeed(1).Diagnostics().Strategy != "software"
	fmt.Printf("Strategy matches CPU: %v\n", usesHardware == fs.HardwareRandom())
	// Output:
	// Strategy matches CPU: true
}
