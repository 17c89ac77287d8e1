package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"quill/internal/logging"
)

const streamChunkBuffer = 64

// AssistantStream opens a completion request against the AI endpoint and
// returns a channel of decoded text chunks. The response carries no framing
// beyond raw bytes, so chunks are cut at UTF-8 rune boundaries; a multi-byte
// rune split across reads is carried into the next chunk. The channel closes
// when the stream ends or fails; the cancel func aborts the body read.
func (c *Client) AssistantStream(ctx context.Context, req AssistantRequest) (<-chan string, func(), error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ai/assistant", bytes.NewReader(buf))
	if err != nil {
		cancel()
		return nil, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Streaming must outlive the client's request timeout.
	httpClient := &http.Client{Transport: c.http.Transport}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		cancel()
		return nil, nil, decodeAPIError(resp)
	}

	ch := make(chan string, streamChunkBuffer)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		start := time.Now()
		total := 0
		read := make([]byte, 4096)
		var carry []byte
		for {
			n, err := resp.Body.Read(read)
			if n > 0 {
				data := append(carry, read[:n]...)
				cut := runeBoundary(data)
				carry = append([]byte(nil), data[cut:]...)
				if cut > 0 {
					select {
					case ch <- string(data[:cut]):
						total += cut
					case <-ctx.Done():
						return
					}
				}
			}
			if err != nil {
				if len(carry) > 0 {
					select {
					case ch <- string(carry):
						total += len(carry)
					case <-ctx.Done():
					}
				}
				c.log.Debug("assistant stream closed",
					logging.F("bytes", total),
					logging.F("dur", time.Since(start)),
					logging.F("err", err))
				return
			}
		}
	}()

	return ch, cancel, nil
}

// runeBoundary returns the length of the longest prefix of data that does
// not end in an incomplete UTF-8 sequence.
func runeBoundary(data []byte) int {
	for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if !utf8.FullRune(data[i:]) {
				return i
			}
			break
		}
	}
	return len(data)
}
