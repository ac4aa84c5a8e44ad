package savefile

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vindec/internal/vin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVIN = "UABBGNC123451NABSAH-AJM18A-A-"

func putString(b *bytes.Buffer, s string) {
	b.WriteByte(byte(len(s)))
	b.WriteString(s)
}

func putU32(b *bytes.Buffer, v uint32) {
	_ = binary.Write(b, binary.LittleEndian, v)
}

func frame(tag string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteByte(EntryStart)
	b.WriteByte(byte(len(tag)))
	b.WriteString(tag)
	putU32(&b, uint32(len(body)))
	b.Write(body)
	return b.Bytes()
}

func dictionaryBody(pairs [][2]string) []byte {
	var b bytes.Buffer
	b.WriteByte(ContainerDictionary)
	b.WriteByte(0x00)
	putU32(&b, ValueTypeString)
	putU32(&b, ValueTypeString)
	b.Write([]byte{0x00, 0x00})
	putU32(&b, uint32(len(pairs)))
	for _, p := range pairs {
		putString(&b, p[0])
		putString(&b, p[1])
	}
	return b.Bytes()
}

// samplePairs splits sampleVIN into save file pairs, in reverse order to
// show the dictionary order does not matter.
func samplePairs(wrap bool) [][2]string {
	var pairs [][2]string
	pos := 0
	for _, f := range vin.Fields() {
		v := sampleVIN[pos : pos+f.Len]
		pos += f.Len
		if wrap {
			v = "string(" + v + ")"
		}
		pairs = append([][2]string{{f.Key, v}}, pairs...)
	}
	return pairs
}

func sampleSave(wrap bool) []byte {
	var b bytes.Buffer
	b.WriteString("junk header \x00\x01")
	b.Write(frame("Other", []byte{0x7E, 0x01, 0x02, 0x03}))
	b.Write(frame(VINTag, dictionaryBody(samplePairs(wrap))))
	b.Write(frame("Trailer", []byte("tail")))
	return b.Bytes()
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadVIN(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		path := writeTemp(t, sampleSave(wrap))
		got, err := New(path).ReadVIN(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleVIN, got, "wrapped=%v", wrap)

		res, err := vin.Decode(got)
		require.NoError(t, err)
		assert.Empty(t, res.Unknown())
	}
}

func TestParseEntries(t *testing.T) {
	entries, err := ParseEntries(sampleSave(false))
	require.NoError(t, err)
	require.Len(t, entries, 24)
	assert.Equal(t, Entry{Key: vin.KeyRearWindow, Value: "-"}, entries[0])
	assert.Equal(t, Entry{Key: vin.KeyCountry, Value: "U"}, entries[23])
}

func TestParseEntriesNoVINData(t *testing.T) {
	_, err := ParseEntries(frame("Other", []byte("nothing here")))
	assert.ErrorIs(t, err, ErrNoVINData)

	_, err = ParseEntries(nil)
	assert.ErrorIs(t, err, ErrNoVINData)

	// A VINGen4 entry that is not a dictionary.
	var body bytes.Buffer
	body.WriteByte(0xFF)
	body.WriteByte(0x00)
	putU32(&body, ValueTypeString)
	body.WriteByte(0x00)
	_, err = ParseEntries(frame(VINTag, body.Bytes()))
	assert.ErrorIs(t, err, ErrNoVINData)
}

func TestParseEntriesTruncated(t *testing.T) {
	full := frame(VINTag, dictionaryBody(samplePairs(false)))

	// Frame claims more body than the file holds.
	_, err := ParseEntries(full[:len(full)-3])
	assert.ErrorIs(t, err, ErrNoVINData)

	// Dictionary count larger than the data: error, no panic.
	body := dictionaryBody([][2]string{{"Country", "U"}})
	binary.LittleEndian.PutUint32(body[12:], 5)
	entries, err := ParseEntries(frame(VINTag, body))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTruncated))
	assert.Len(t, entries, 1)

	// Header cut short.
	_, err = ParseEntries(frame(VINTag, []byte{ContainerDictionary, 0x00, 0x01}))
	assert.ErrorIs(t, err, errTruncated)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		valueType uint32
		want      string
		advance   int
	}{
		{"string", []byte{3, 'a', 'b', 'c', 9}, ValueTypeString, "abc", 4},
		{"empty string", []byte{0}, ValueTypeString, "", 1},
		{"int32", []byte{0x39, 0x30, 0x00, 0x00}, ValueTypeInt32, "12345", 4},
		{"negative int32", []byte{0xFF, 0xFF, 0xFF, 0xFF}, ValueTypeInt32, "-1", 4},
		{"bool true", []byte{1}, ValueTypeBool, "true", 1},
		{"bool false", []byte{0}, ValueTypeBool, "false", 1},
		{"unknown type", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0x1234, "deadbeef", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := 0
			got, err := parseValue(tt.data, &offset, tt.valueType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.advance, offset)
		})
	}

	offset := 0
	_, err := parseValue([]byte{5, 'a'}, &offset, ValueTypeString)
	assert.ErrorIs(t, err, errTruncated)
	assert.Equal(t, 0, offset)
}

func TestReadVINMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.txt")).ReadVIN(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New("").ReadVIN(context.Background())
	assert.Error(t, err)
}

func sampleEntries() []Entry {
	pairs := samplePairs(false)
	entries := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, Entry{Key: p[0], Value: p[1]})
	}
	return entries
}

func setEntry(entries []Entry, key, value string) []Entry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
		}
	}
	return entries
}

func TestAssembleVIN(t *testing.T) {
	got, err := AssembleVIN(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, sampleVIN, got)
}

func TestAssembleVINMissingField(t *testing.T) {
	got, err := AssembleVIN(sampleEntries()[1:])
	assert.ErrorIs(t, err, vin.ErrInvalidFormat)
	assert.Contains(t, err.Error(), vin.KeyRearWindow)
	assert.Empty(t, got)
}

func TestAssembleVINFieldWidth(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		field   string
	}{
		{
			// Total length still adds up to a full VIN.
			name:    "long value next to short value",
			entries: setEntry(setEntry(sampleEntries(), vin.KeyCountry, "UK"), vin.KeyAssemblyPlant, ""),
			field:   vin.KeyCountry,
		},
		{
			name:    "short serial",
			entries: setEntry(sampleEntries(), vin.KeySerial, "1234"),
			field:   vin.KeySerial,
		},
		{
			name:    "wrapped engine too long",
			entries: setEntry(sampleEntries(), vin.KeyEngine, "string(NAX)"),
			field:   vin.KeyEngine,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssembleVIN(tt.entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, vin.ErrInvalidFormat)
			assert.Contains(t, err.Error(), tt.field)
			assert.Empty(t, got)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("USERPROFILE", "")
	assert.Empty(t, DefaultPath())

	t.Setenv("USERPROFILE", "/home/player")
	assert.Equal(t,
		filepath.Join("/home/player", "AppData", "LocalLow", "Amistech", "My Winter Car", "carparts.txt"),
		DefaultPath())
}

func TestWatch(t *testing.T) {
	prev := WatchDebounce
	WatchDebounce = 20 * time.Millisecond
	t.Cleanup(func() { WatchDebounce = prev })

	path := writeTemp(t, sampleSave(false))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, sampleSave(true), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
