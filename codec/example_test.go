package codec_test

import (
	"fmt"

	"github.com/AvigailEhrlich/Lab-General-Logger/codec"
)

func Example() {
	payload, err := codec.Encode("spectrometer run 42: baseline drift exceeded")
	if err != nil {
		panic(err)
	}

	text, err := codec.Decode(payload)
	if err != nil {
		panic(err)
	}

	fmt.Println(text)
	// Output: spectrometer run 42: baseline drift exceeded
}

func ExampleDecode_error() {
	_, err := codec.Decode("not a payload")
	fmt.Println(err)
	// Output: decode payload: invalid base64: illegal base64 data at input byte 3
}
