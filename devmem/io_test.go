package devmem_test

import (
	"bytes"
	"testing"

	"github.com/clktmr/ral/devmem"
)

func TestReadWriteIO(t *testing.T) {
	testdata := []byte("Hello everybody, I'm Bonzo!")

	r, err := devmem.MapAnon(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	initBytes := make([]byte, 64)
	for i := range initBytes {
		initBytes[i] = byte(i+0x30) % 64
	}

	for busAlign := 0; busAlign < 7; busAlign++ {
		for sliceLen := 0; sliceLen < len(testdata)+1; sliceLen++ {
			devmem.WriteIO(r, 0, initBytes)

			tx := testdata[:sliceLen]
			devmem.WriteIO(r, busAlign, tx)

			rx := make([]byte, sliceLen)
			devmem.ReadIO(r, busAlign, rx)

			if !bytes.Equal(tx, rx) {
				t.Logf("tx %q", string(tx))
				t.Logf("rx %q", string(rx))
				t.Error("mismatch at ", busAlign, sliceLen)
			}

			check := make([]byte, len(initBytes))
			devmem.ReadIO(r, 0, check)
			start := busAlign
			if !bytes.Equal(check[:start], initBytes[:start]) {
				t.Logf("got      %q", string(check[:start]))
				t.Logf("expected %q", string(initBytes[:start]))
				t.Error("modified preceding data", busAlign, sliceLen)
			}
			end := busAlign + sliceLen
			if !bytes.Equal(check[end:], initBytes[end:]) {
				t.Logf("got      %q", string(check[end:]))
				t.Logf("expected %q", string(initBytes[end:]))
				t.Error("modified succeeding data", busAlign, sliceLen)
			}
			if t.Failed() {
				t.Fatal()
			}
		}
	}
}
