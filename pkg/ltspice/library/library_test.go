package library

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

const capSymbol = "Version 4\nSymbolType CELL\nLINE Normal 0 20 32 20\nWINDOW 0 24 8 Left 2\nWINDOW 3 24 56 Left 2\nPIN 16 0 NONE 0\n"

func utf16le(t *testing.T, s string, bom bool) []byte {
	t.Helper()
	policy := unicode.IgnoreBOM
	if bom {
		policy = unicode.UseBOM
	}
	out, err := unicode.UTF16(unicode.LittleEndian, policy).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestDetect(t *testing.T) {
	assert.Equal(t, EncodingUTF8, Detect([]byte("Version 4\n")))
	assert.Equal(t, EncodingUTF8, Detect(append([]byte{0xEF, 0xBB, 0xBF}, "Version 4"...)))
	assert.Equal(t, EncodingUTF16LE, Detect(utf16le(t, "Version 4", true)))
	assert.Equal(t, EncodingUTF16LE, Detect(utf16le(t, "Version 4", false)))
	assert.Equal(t, EncodingUTF16BE, Detect([]byte{0xFE, 0xFF, 0, 'V'}))
	assert.Equal(t, EncodingCP1252, Detect([]byte("TEXT 0 0 Left 2 ;10\xb5F\n")))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"utf-8", []byte("TEXT 0 0 Left 2 ;10µF")},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "TEXT 0 0 Left 2 ;10µF"...)},
		{"utf-16le bom", utf16le(t, "TEXT 0 0 Left 2 ;10µF", true)},
		{"utf-16le", utf16le(t, "TEXT 0 0 Left 2 ;10µF", false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, "TEXT 0 0 Left 2 ;10µF", got)
		})
	}

	cp, err := charmap.Windows1252.NewEncoder().Bytes([]byte("TEXT 0 0 Left 2 ;10µF"))
	require.NoError(t, err)
	got, err := Decode(cp)
	require.NoError(t, err)
	assert.Equal(t, "TEXT 0 0 Left 2 ;10µF", got)
}

func TestLibraryCachesDefinitions(t *testing.T) {
	lib := New(nil, MapSource{"cap": capSymbol})

	a, err := lib.Resolve("cap")
	require.NoError(t, err)
	b, err := lib.Resolve("cap")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, lib.Len())
	assert.Len(t, a.Pins, 1)
}

func TestLibraryConcurrentResolve(t *testing.T) {
	lib := New(nil, MapSource{"cap": capSymbol})

	const n = 16
	defs := make([]*model.SymbolDefinition, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			def, err := lib.Resolve("cap")
			assert.NoError(t, err)
			defs[i] = def
		}(i)
	}
	wg.Wait()

	for _, def := range defs {
		assert.Same(t, defs[0], def)
	}
}

func TestLibraryUnknownSymbol(t *testing.T) {
	lib := New(nil, MapSource{"cap": capSymbol})
	_, err := lib.Resolve("ind")
	assert.ErrorIs(t, err, model.ErrUnresolvedSymbol)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, lib.Len())
}

func TestLibraryMalformedSymbol(t *testing.T) {
	lib := New(nil, MapSource{"bad": "WINDOW zero 0 0 Left 2\n"})
	_, err := lib.Resolve("bad")
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestLibrarySourceOrder(t *testing.T) {
	lib := New(nil,
		MapSource{"res": "Version 4\nPIN 0 0 NONE 0\n"},
		MapSource{"res": capSymbol, "cap": capSymbol},
	)
	res, err := lib.Resolve("res")
	require.NoError(t, err)
	assert.Empty(t, res.Windows)

	c, err := lib.Resolve("cap")
	require.NoError(t, err)
	assert.Len(t, c.Windows, 2)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cap.asy"), []byte(capSymbol))
	writeFile(t, filepath.Join(root, "Misc", "signal.asy"), utf16le(t, capSymbol, false))
	writeFile(t, filepath.Join(root, "Opamps", "UniversalOpamp2.asy"), []byte(capSymbol))

	src := NewDirSource(root)

	data, err := src.Lookup("cap")
	require.NoError(t, err)
	assert.Equal(t, capSymbol, string(data))

	_, err = src.Lookup(`Misc\signal`)
	require.NoError(t, err)

	// basename search, case-insensitive
	_, err = src.Lookup("universalopamp2")
	require.NoError(t, err)

	_, err = src.Lookup("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	lib := FromDirs(nil, filepath.Join(root, "missing"), root)
	def, err := lib.Resolve(`Misc\signal`)
	require.NoError(t, err)
	assert.Len(t, def.Windows, 2)
}

func TestOpenSchematic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sym", "cap.asy"), []byte(capSymbol))
	asc := filepath.Join(root, "rc.asc")
	writeFile(t, asc, utf16le(t, "Version 4\nSHEET 1 880 680\nWIRE 16 0 16 -32\nSYMBOL cap 0 0 R0\nSYMATTR InstName C1\n", false))

	sch, err := OpenSchematic(asc, FromDirs(nil, filepath.Join(root, "sym")))
	require.NoError(t, err)
	require.Len(t, sch.Instances, 1)
	assert.Equal(t, "C1", sch.Instances[0].Name())
	assert.NotNil(t, sch.GetSymbol("cap"))

	_, err = OpenSchematic(filepath.Join(root, "absent.asc"), FromDirs(nil))
	assert.Error(t, err)
}
