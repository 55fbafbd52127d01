package kitty

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/calvike/fovea/internal/term"
)

// recordPort captures everything written through the port.
type recordPort struct {
	buf     bytes.Buffer
	flushes int
}

func (p *recordPort) Write(b []byte) (int, error) { return p.buf.Write(b) }

func (p *recordPort) Flush() error {
	p.flushes++
	return nil
}

func (p *recordPort) ReadByte(time.Duration) (byte, error) {
	return 0, term.ErrReadTimeout
}

// commands splits the captured stream into individual APC commands.
func (p *recordPort) commands(t *testing.T) []string {
	t.Helper()
	out := p.buf.String()
	if out == "" {
		return nil
	}
	var cmds []string
	for _, part := range strings.Split(out, apcEnd) {
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, apcStart) {
			t.Fatalf("command does not start with APC introducer: %q", part)
		}
		cmds = append(cmds, strings.TrimPrefix(part, apcStart))
	}
	return cmds
}

func solidRGBA(width, height int) []byte {
	buf := make([]byte, width*height*4)
	for i := range buf {
		buf[i] = 0x7F
	}
	return buf
}

func TestTransmitSingleChunk(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)

	rgba := solidRGBA(8, 4)
	id, err := tx.Transmit(rgba, 8, 4, 16, 32)
	if err != nil {
		t.Fatalf("transmit: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}

	cmds := port.commands(t)
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	header, payload, ok := strings.Cut(cmds[0], ";")
	if !ok {
		t.Fatalf("command has no payload separator: %q", cmds[0])
	}
	want := "a=T,f=32,s=8,v=4,i=1,x=16,y=32,m=0"
	if header != want {
		t.Fatalf("expected header %q, got %q", want, header)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, rgba) {
		t.Fatalf("payload does not round-trip to the source buffer")
	}
	if port.flushes != 1 {
		t.Fatalf("expected 1 flush, got %d", port.flushes)
	}
}

func TestTransmitChunking(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)

	// 64x32 RGBA is 8192 raw bytes, 10924 base64 chars: three chunks.
	rgba := solidRGBA(64, 32)
	if _, err := tx.Transmit(rgba, 64, 32, 0, 0); err != nil {
		t.Fatalf("transmit: %v", err)
	}

	cmds := port.commands(t)
	encodedLen := base64.StdEncoding.EncodedLen(len(rgba))
	wantChunks := (encodedLen + chunkSize - 1) / chunkSize
	if len(cmds) != wantChunks {
		t.Fatalf("expected %d commands, got %d", wantChunks, len(cmds))
	}

	var payload strings.Builder
	for i, cmd := range cmds {
		header, chunk, ok := strings.Cut(cmd, ";")
		if !ok {
			t.Fatalf("command %d has no payload separator", i)
		}
		last := i == len(cmds)-1
		if i == 0 {
			if !strings.Contains(header, "a=T,f=32,s=64,v=32") {
				t.Fatalf("first header missing transmit keys: %q", header)
			}
		} else if !strings.HasPrefix(header, "m=") {
			t.Fatalf("continuation %d carries extra keys: %q", i, header)
		}
		wantMore := "m=1"
		if last {
			wantMore = "m=0"
		}
		if !strings.HasSuffix(header, wantMore) {
			t.Fatalf("command %d: expected %s in header %q", i, wantMore, header)
		}
		if !last && len(chunk) != chunkSize {
			t.Fatalf("command %d: expected full %d-byte chunk, got %d", i, chunkSize, len(chunk))
		}
		payload.WriteString(chunk)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload.String())
	if err != nil {
		t.Fatalf("reassembled payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, rgba) {
		t.Fatalf("reassembled payload does not match the source buffer")
	}
}

func TestTransmitIDsIncrease(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)
	rgba := solidRGBA(2, 2)
	for want := uint32(1); want <= 3; want++ {
		id, err := tx.Transmit(rgba, 2, 2, 0, 0)
		if err != nil {
			t.Fatalf("transmit %d: %v", want, err)
		}
		if id != want {
			t.Fatalf("expected id %d, got %d", want, id)
		}
		if tx.LastID() != want {
			t.Fatalf("expected LastID %d, got %d", want, tx.LastID())
		}
	}
}

func TestTransmitRejectsBadBuffer(t *testing.T) {
	tx := NewTransmitter(&recordPort{})
	if _, err := tx.Transmit(make([]byte, 8), 2, 2, 0, 0); err == nil {
		t.Fatalf("expected error for short buffer")
	}
	if _, err := tx.Transmit(nil, 0, 2, 0, 0); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestDeleteLast(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)

	if err := tx.DeleteLast(); err != nil {
		t.Fatalf("delete before transmit: %v", err)
	}
	if port.buf.Len() != 0 {
		t.Fatalf("delete before transmit wrote %q", port.buf.String())
	}

	if _, err := tx.Transmit(solidRGBA(2, 2), 2, 2, 0, 0); err != nil {
		t.Fatalf("transmit: %v", err)
	}
	port.buf.Reset()
	if err := tx.DeleteLast(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cmds := port.commands(t)
	if len(cmds) != 1 || cmds[0] != "a=d,d=I,i=1" {
		t.Fatalf("expected delete command for id 1, got %v", cmds)
	}
	if tx.LastID() != 0 {
		t.Fatalf("expected LastID reset, got %d", tx.LastID())
	}
}

func TestDeletePrevious(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)
	if err := tx.DeletePrevious(0); err != nil {
		t.Fatalf("delete id 0: %v", err)
	}
	if port.buf.Len() != 0 {
		t.Fatalf("delete id 0 wrote %q", port.buf.String())
	}
	if err := tx.DeletePrevious(7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cmds := port.commands(t)
	if len(cmds) != 1 || cmds[0] != "a=d,d=I,i=7" {
		t.Fatalf("expected delete command for id 7, got %v", cmds)
	}
}

func TestDeleteAll(t *testing.T) {
	port := &recordPort{}
	tx := NewTransmitter(port)
	if _, err := tx.Transmit(solidRGBA(2, 2), 2, 2, 0, 0); err != nil {
		t.Fatalf("transmit: %v", err)
	}
	port.buf.Reset()
	if err := tx.DeleteAll(); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	cmds := port.commands(t)
	if len(cmds) != 1 || cmds[0] != "a=d,d=A" {
		t.Fatalf("expected delete-all command, got %v", cmds)
	}
	if tx.LastID() != 0 {
		t.Fatalf("expected LastID reset, got %d", tx.LastID())
	}
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 1},
		{1, 1},
		{chunkSize, 1},
		{chunkSize + 1, 2},
		{3 * chunkSize, 3},
	}
	for _, tc := range tests {
		payload := strings.Repeat("A", tc.size)
		chunks := splitChunks(payload)
		if len(chunks) != tc.want {
			t.Fatalf("size %d: expected %d chunks, got %d", tc.size, tc.want, len(chunks))
		}
		if joined := strings.Join(chunks, ""); joined != payload {
			t.Fatalf("size %d: chunks do not rejoin to the payload", tc.size)
		}
	}
}
