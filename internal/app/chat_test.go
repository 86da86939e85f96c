package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

func TestSend_ReturnsReplyAndPersistsTurn(t *testing.T) {
	repo := &fakeChatRepo{}
	assistant := &fakeAssistant{reply: "hello"}
	svc := app.NewChatService(repo, assistant)

	reply, err := svc.Send(context.Background(), "u1", "Ana", "where should I go in May?")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reply != "hello" {
		t.Fatalf("expected the assistant text verbatim, got %q", reply)
	}

	turns, _ := repo.ListTurns(context.Background(), "u1")
	if len(turns) != 1 {
		t.Fatalf("expected one stored turn, got %d", len(turns))
	}
	if turns[0].User != "where should I go in May?" || turns[0].Assistant != "hello" {
		t.Fatalf("unexpected turn: %+v", turns[0])
	}

	// the prompt frames the user's name and question
	if !strings.Contains(assistant.lastPrompt, "Ana") || !strings.Contains(assistant.lastPrompt, "where should I go in May?") {
		t.Fatalf("unexpected prompt: %q", assistant.lastPrompt)
	}
}

func TestSend_AssistantFailure(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := app.NewChatService(repo, &fakeAssistant{err: errors.New("boom")})

	_, err := svc.Send(context.Background(), "u1", "Ana", "hi")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected upstream kind, got %v", err)
	}
	if len(repo.turns) != 0 {
		t.Fatalf("failed exchange must not be persisted")
	}
}

func TestPredict_NoPersistence(t *testing.T) {
	repo := &fakeChatRepo{}
	assistant := &fakeAssistant{reply: "raw answer"}
	svc := app.NewChatService(repo, assistant)

	reply, err := svc.Predict(context.Background(), "tell me a joke")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reply != "raw answer" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	// raw passthrough: the prompt is forwarded untouched
	if assistant.lastPrompt != "tell me a joke" {
		t.Fatalf("prompt was templated: %q", assistant.lastPrompt)
	}
	if len(repo.turns) != 0 {
		t.Fatalf("predict must not record turns")
	}
}

func TestPurge_ThenEmptyHistory(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := app.NewChatService(repo, &fakeAssistant{reply: "ok"})

	if _, err := svc.Send(context.Background(), "u1", "Ana", "q1"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(context.Background(), "u2", "Bo", "q2"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.Purge(context.Background(), "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	// purging an already-empty history is still success
	if err := svc.Purge(context.Background(), "u1"); err != nil {
		t.Fatalf("repeat purge: %v", err)
	}

	turns, err := svc.History(context.Background(), "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history, got %d turns", len(turns))
	}

	others, _ := svc.History(context.Background(), "u2")
	if len(others) != 1 {
		t.Fatalf("other users' turns must survive, got %d", len(others))
	}
}
