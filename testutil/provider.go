package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// ProviderCall is one request observed by FakeProvider.
type ProviderCall struct {
	Authorization string
	Path          string
	From          string
	To            string
	Text          string
}

type scriptedReply struct {
	status int
	body   string
}

// FakeProvider mimics the Infobip advanced-text endpoint. Every destination
// succeeds unless scripted otherwise with FailFor.
type FakeProvider struct {
	*httptest.Server

	mu    sync.Mutex
	calls []ProviderCall
	reply map[string]scriptedReply
	delay time.Duration
}

func NewFakeProvider(t *testing.T) *FakeProvider {
	t.Helper()
	f := &FakeProvider{reply: map[string]scriptedReply{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// FailFor makes requests to `to` answer with status and raw body.
func (f *FakeProvider) FailFor(to string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply[to] = scriptedReply{status: status, body: body}
}

// Delay holds every response for d before answering.
func (f *FakeProvider) Delay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *FakeProvider) Calls() []ProviderCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ProviderCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Messages []struct {
			From         string `json:"from"`
			Destinations []struct {
				To string `json:"to"`
			} `json:"destinations"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || len(in.Messages) == 0 || len(in.Messages[0].Destinations) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"requestError":{"serviceException":{"messageId":"BAD_REQUEST","text":"Bad request"}}}`))
		return
	}

	msg := in.Messages[0]
	call := ProviderCall{
		Authorization: r.Header.Get("Authorization"),
		Path:          r.URL.Path,
		From:          msg.From,
		To:            msg.Destinations[0].To,
		Text:          msg.Text,
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	reply, scripted := f.reply[call.To]
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if scripted {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(reply.status)
		_, _ = w.Write([]byte(reply.body))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprintf(w, `{"bulkId":"fake-bulk","messages":[{"to":%q,"messageId":"fake-%d","status":{"groupId":1,"groupName":"PENDING","id":26,"name":"PENDING_ACCEPTED"}}]}`,
		call.To, len(f.Calls()))
}
