package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
	"github.com/winhire/interview-engine/internal/models"
)

// ==========================
// Fakes
// ==========================

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{}, nil
}

type fakeSNS struct {
	inputs []*sns.PublishInput
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sns.PublishOutput{}, nil
}

type recordingNotifier struct {
	name string
	err  error

	mu   sync.Mutex
	seen []Message
	gate chan struct{}
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Notify(_ context.Context, msg Message) error {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, msg)
	return r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func selectedApplication() *models.Application {
	return &models.Application{
		ID:          10,
		CandidateID: 4,
		JobID:       2,
		Status:      "Selected",
		Candidate:   &models.Candidate{ID: 4, Name: "Asha Rao", Email: "asha@example.com"},
		Job:         &models.Job{ID: 2, Title: "Backend Engineer"},
	}
}

// ==========================
// Message
// ==========================

func TestSelectionMessage(t *testing.T) {
	msg, err := SelectionMessage(selectedApplication())
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, KindCandidateSelected, msg.Kind)
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Backend Engineer")
	assert.Contains(t, msg.Body, "Asha Rao")
	assert.Equal(t, "10", msg.Attributes["application_id"])
}

func TestSelectionMessage_NoCandidateEmail(t *testing.T) {
	app := selectedApplication()
	app.Candidate.Email = ""

	_, err := SelectionMessage(app)
	assert.Error(t, err)

	app.Candidate.Email = "asha at example"
	_, err = SelectionMessage(app)
	assert.ErrorContains(t, err, "not deliverable")
}

// ==========================
// Channels
// ==========================

func TestSESNotifier(t *testing.T) {
	client := &fakeSES{}
	n := NewSESNotifier(client, "talent@example.com")

	msg, _ := SelectionMessage(selectedApplication())
	require.NoError(t, n.Notify(context.Background(), msg))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, []string{"asha@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "talent@example.com", *in.Source)
	assert.Equal(t, msg.Subject, *in.Message.Subject.Data)
}

func TestSESNotifier_WrapsError(t *testing.T) {
	boom := errors.New("throttled")
	n := NewSESNotifier(&fakeSES{err: boom}, "talent@example.com")

	err := n.Notify(context.Background(), Message{ID: "m1", To: "a@example.com"})
	assert.ErrorIs(t, err, boom)
}

func TestSNSNotifier(t *testing.T) {
	client := &fakeSNS{}
	n := NewSNSNotifier(client, "arn:aws:sns:us-east-1:123456789012:hiring")

	msg, _ := SelectionMessage(selectedApplication())
	require.NoError(t, n.Notify(context.Background(), msg))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:hiring", *in.TopicArn)
	assert.Equal(t, KindCandidateSelected, *in.MessageAttributes["kind"].StringValue)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(*in.Message), &body))
	assert.Equal(t, msg.ID, body["id"])
}

// ==========================
// Dispatcher
// ==========================

func TestDispatcher_DeliversToEveryChannel(t *testing.T) {
	m := metrics.NewNop()
	ok := &recordingNotifier{name: "ses"}
	failing := &recordingNotifier{name: "sns", err: errors.New("topic not found")}
	d := NewDispatcher([]Notifier{ok, failing}, logger.NewTestLogger(t), m, 10)

	d.Publish(Message{ID: "m1", Kind: KindCandidateSelected})
	d.Close()

	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, failing.count())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationsSent.WithLabelValues("ses", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationsSent.WithLabelValues("sns", "error")))
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	m := metrics.NewNop()
	slow := &recordingNotifier{name: "log", gate: make(chan struct{})}
	d := NewDispatcher([]Notifier{slow}, logger.NewNoOpLogger(), m, 1)

	// The worker holds the first message; the second fills the queue.
	d.Publish(Message{ID: "m1"})
	require.Eventually(t, func() bool { return len(d.queue) == 0 }, time.Second, time.Millisecond)
	d.Publish(Message{ID: "m2"})
	d.Publish(Message{ID: "m3"})

	close(slow.gate)
	d.Close()

	assert.Equal(t, 2, slow.count())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationsDropped))
}

func TestDispatcher_PublishAfterCloseIsIgnored(t *testing.T) {
	rec := &recordingNotifier{name: "log"}
	d := NewDispatcher([]Notifier{rec}, logger.NewNoOpLogger(), nil, 0)
	d.Close()

	d.Publish(Message{ID: "late"})
	d.Close()
	assert.Equal(t, 0, rec.count())
}
