package concierge

import (
	"context"
	"errors"
	"testing"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/google/uuid"
)

type suggesterFunc func(ctx context.Context, text string) ([]models.Suggestion, error)

func (fn suggesterFunc) Suggest(ctx context.Context, text string) ([]models.Suggestion, error) {
	return fn(ctx, text)
}

type recordingFeed struct {
	events []types.FeedEvent
}

func (f *recordingFeed) Push(_ context.Context, _ uuid.UUID, event types.FeedEvent, _ any) error {
	f.events = append(f.events, event)
	return nil
}

var venues = []models.Suggestion{
	{Name: "The Nest", Address: "110 6th Ave, Seattle", Description: "Rooftop bar"},
	{Name: "Q Nightclub", Address: "1426 Broadway, Seattle", Description: "Dance club"},
}

func TestAsk(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	var asked string
	svc := New(suggesterFunc(func(_ context.Context, text string) ([]models.Suggestion, error) {
		asked = text
		return venues, nil
	}), &recordingFeed{}, logger.Discard())

	conv, err := svc.Ask(ctx, id, "  rooftop drinks  ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if asked != "rooftop drinks" {
		t.Fatalf("suggester got %q", asked)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("messages = %+v", conv.Messages)
	}
	if conv.Messages[0].Role != types.ChatRoleUser || conv.Messages[1].Text != FoundReply {
		t.Fatalf("messages = %+v", conv.Messages)
	}
	if len(conv.Suggestions) != len(venues) {
		t.Fatalf("suggestions = %+v", conv.Suggestions)
	}

	s, err := svc.Select(id, 1)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got := s.FullAddress(); got != "Q Nightclub, 1426 Broadway, Seattle" {
		t.Fatalf("FullAddress() = %q", got)
	}
	if _, err := svc.Select(id, 2); !errors.Is(err, types.ErrSuggestionNotFound) {
		t.Fatalf("Select(2) error = %v", err)
	}
}

func TestAskBlank(t *testing.T) {
	svc := New(suggesterFunc(func(context.Context, string) ([]models.Suggestion, error) {
		t.Fatal("suggester called for blank input")
		return nil, nil
	}), &recordingFeed{}, logger.Discard())

	id := uuid.New()
	if _, err := svc.Ask(context.Background(), id, "   "); !errors.Is(err, types.ErrEmptyMessage) {
		t.Fatalf("Ask() error = %v, want %v", err, types.ErrEmptyMessage)
	}
	if conv := svc.Conversation(id); len(conv.Messages) != 0 {
		t.Fatalf("blank input recorded: %+v", conv.Messages)
	}
}

func TestAskFailureKeepsSuggestions(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	fail := false

	svc := New(suggesterFunc(func(context.Context, string) ([]models.Suggestion, error) {
		if fail {
			return nil, types.ErrMalformedSuggestion
		}
		return venues, nil
	}), &recordingFeed{}, logger.Discard())

	if _, err := svc.Ask(ctx, id, "clubs"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	fail = true
	conv, err := svc.Ask(ctx, id, "more clubs")
	if !errors.Is(err, types.ErrSuggestionFailed) || !errors.Is(err, types.ErrMalformedSuggestion) {
		t.Fatalf("Ask() error = %v", err)
	}
	if last := conv.Messages[len(conv.Messages)-1]; last.Text != FailureReply || last.Role != types.ChatRoleModel {
		t.Fatalf("last message = %+v", last)
	}
	if len(conv.Suggestions) != len(venues) {
		t.Fatalf("failure dropped previous suggestions: %+v", conv.Suggestions)
	}
}

func TestAdviseAndForget(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	feed := &recordingFeed{}
	svc := New(nil, feed, logger.Discard())

	svc.Advise(ctx, id, "Geolocation is not supported by your browser.")
	conv := svc.Conversation(id)
	if len(conv.Messages) != 1 || conv.Messages[0].Role != types.ChatRoleModel {
		t.Fatalf("messages = %+v", conv.Messages)
	}
	if len(feed.events) != 1 || feed.events[0] != types.EventAdvisory {
		t.Fatalf("feed events = %v", feed.events)
	}

	svc.Forget(id)
	if conv := svc.Conversation(id); len(conv.Messages) != 0 {
		t.Fatalf("chat survived Forget: %+v", conv)
	}
}
