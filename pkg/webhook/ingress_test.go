package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/ent/webhookevent"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
	"github.com/postflow-io/postflow/pkg/services"
	testdb "github.com/postflow-io/postflow/test/database"
)

const testSecret = "whsec_test_secret"

func signPlain(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func testWebhookConfig() *config.WebhookConfig {
	return &config.WebhookConfig{
		SignatureTolerance: 5 * time.Minute,
		DLQMaxRetries:      3,
		ReconcileInterval:  time.Minute,
		Providers: map[string]*config.WebhookProviderConfig{
			"instagram": {
				SecretEnv:       "TEST_WEBHOOK_SECRET",
				SignatureHeader: "X-Hub-Signature-256",
				SignaturePrefix: "sha256=",
			},
		},
	}
}

type ingressFixture struct {
	client   *ent.Client
	ingress  *Ingress
	webhooks *services.WebhookService
	mappings *services.MappingService
	posts    *services.PostService
}

func setupIngress(t *testing.T) *ingressFixture {
	t.Setenv("TEST_WEBHOOK_SECRET", testSecret)

	client := testdb.NewTestClient(t)
	cfg := config.DefaultSchedulerConfig()
	cfg.PostingJitterMin = 0
	cfg.PostingJitterMax = 0

	posts := services.NewPostService(client.Client, cfg, config.NewFeatures(nil))
	webhooks := services.NewWebhookService(client.Client)
	mappings := services.NewMappingService(client.Client)

	return &ingressFixture{
		client:   client.Client,
		ingress:  NewIngress(testWebhookConfig(), webhooks, mappings, posts, nil),
		webhooks: webhooks,
		mappings: mappings,
		posts:    posts,
	}
}

// createAwaitingPost seeds an awaiting_remote post with a trusted mapping for
// the given remote id.
func (f *ingressFixture) createAwaitingPost(t *testing.T, remoteID string) string {
	t.Helper()
	ctx := context.Background()

	cipher, err := services.NewTokenCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	accounts := services.NewAccountService(f.client, cipher)
	acct, err := accounts.CreateAccount(ctx,
		models.CreatorPrincipal{CreatorID: "creator-1"},
		models.CreateAccountRequest{
			Platform:          "instagram",
			PlatformAccountID: "ig-" + remoteID,
			AccessToken:       "tok",
		})
	require.NoError(t, err)

	result, err := f.posts.Publish(ctx,
		models.CreatorPrincipal{CreatorID: "creator-1"},
		models.PublishRequest{AccountID: acct.AccountID, MediaRef: "s3://media/" + remoteID})
	require.NoError(t, err)

	err = f.client.Post.UpdateOneID(result.PostID).
		SetState(post.StateAwaitingRemote).
		SetRemoteID(remoteID).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, f.mappings.Record(ctx, "instagram", remoteID, result.PostID))
	return result.PostID
}

func TestIngressHandle(t *testing.T) {
	f := setupIngress(t)
	ctx := context.Background()

	t.Run("verified callback publishes the post", func(t *testing.T) {
		postID := f.createAwaitingPost(t, "remote-pub-1")

		body := []byte(`{"event_id":"evt-1","event_type":"media.published","media_id":"remote-pub-1","status":"published"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=" + signPlain(body),
		})

		p, err := f.client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StatePublished, p.State)
		assert.NotNil(t, p.PublishedAt)

		event, err := f.client.WebhookEvent.Query().
			Where(webhookevent.EventIDEQ("evt-1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.ProcessingStatusCompleted, event.ProcessingStatus)
		require.NotNil(t, event.PostID)
		assert.Equal(t, postID, *event.PostID)
	})

	t.Run("duplicate delivery is stored once", func(t *testing.T) {
		f.createAwaitingPost(t, "remote-dup-1")

		body := []byte(`{"event_id":"evt-dup","media_id":"remote-dup-1","status":"published"}`)
		d := Delivery{Provider: "instagram", Body: body, Signature: "sha256=" + signPlain(body)}
		f.ingress.Handle(ctx, d)
		f.ingress.Handle(ctx, d)

		count, err := f.client.WebhookEvent.Query().
			Where(webhookevent.EventIDEQ("evt-dup")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("failed callback fails the post with the reason", func(t *testing.T) {
		postID := f.createAwaitingPost(t, "remote-fail-1")

		body := []byte(`{"event_id":"evt-fail","media_id":"remote-fail-1","status":"failed","reason":"video transcode error"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=" + signPlain(body),
		})

		p, err := f.client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateFailed, p.State)
		require.NotNil(t, p.LastError)
		assert.Equal(t, "video transcode error", *p.LastError)
	})

	t.Run("bad signature is stored but never processed", func(t *testing.T) {
		postID := f.createAwaitingPost(t, "remote-forged-1")

		before := f.ingress.SignatureFailures()
		body := []byte(`{"event_id":"evt-forged","media_id":"remote-forged-1","status":"published"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=deadbeef",
		})
		assert.Equal(t, before+1, f.ingress.SignatureFailures())

		p, err := f.client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateAwaitingRemote, p.State)

		event, err := f.client.WebhookEvent.Query().
			Where(webhookevent.EventIDEQ("evt-forged")).
			Only(ctx)
		require.NoError(t, err)
		assert.False(t, event.SignatureVerified)
		assert.Equal(t, webhookevent.ProcessingStatusDlq, event.ProcessingStatus)
	})

	t.Run("unknown provider is dropped entirely", func(t *testing.T) {
		body := []byte(`{"event_id":"evt-unknown","status":"published"}`)
		f.ingress.Handle(ctx, Delivery{Provider: "myspace", Body: body, Signature: signPlain(body)})

		count, err := f.client.WebhookEvent.Query().Count(ctx)
		require.NoError(t, err)
		before := count

		f.ingress.Handle(ctx, Delivery{Provider: "myspace", Body: body, Signature: signPlain(body)})
		count, err = f.client.WebhookEvent.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, count)
	})

	t.Run("informational callback leaves the post alone", func(t *testing.T) {
		postID := f.createAwaitingPost(t, "remote-progress-1")

		body := []byte(`{"event_id":"evt-progress","media_id":"remote-progress-1","status":"processing"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=" + signPlain(body),
		})

		p, err := f.client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateAwaitingRemote, p.State)
	})
}

func TestIngressReconciler(t *testing.T) {
	f := setupIngress(t)
	ctx := context.Background()

	t.Run("early callback parks then routes once mapped", func(t *testing.T) {
		// Callback arrives before the adapter result created the mapping.
		body := []byte(`{"event_id":"evt-early","media_id":"remote-early-1","status":"published"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=" + signPlain(body),
		})

		parked, err := f.webhooks.ListUnroutable(ctx, 10)
		require.NoError(t, err)
		require.Len(t, parked, 1)

		// The adapter result lands and records the mapping.
		postID := f.createAwaitingPost(t, "remote-early-1")

		reconciler := NewReconciler(testWebhookConfig(), f.ingress, f.webhooks)
		reconciler.reconcileOnce(ctx)

		p, err := f.client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StatePublished, p.State)

		parked, err = f.webhooks.ListUnroutable(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, parked)
	})

	t.Run("unmappable event dead-letters after max retries", func(t *testing.T) {
		body := []byte(`{"event_id":"evt-lost","media_id":"remote-never-mapped","status":"published"}`)
		f.ingress.Handle(ctx, Delivery{
			Provider:  "instagram",
			Body:      body,
			Signature: "sha256=" + signPlain(body),
		})

		reconciler := NewReconciler(testWebhookConfig(), f.ingress, f.webhooks)
		for i := 0; i < 5; i++ {
			reconciler.reconcileOnce(ctx)
		}

		event, err := f.client.WebhookEvent.Query().
			Where(webhookevent.EventIDEQ("evt-lost")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, webhookevent.ProcessingStatusDlq, event.ProcessingStatus)
	})
}
