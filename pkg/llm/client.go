package llm

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	captionv1 "github.com/postflow-io/postflow/proto"
	"github.com/postflow-io/postflow/pkg/budget"
	"github.com/postflow-io/postflow/pkg/config"
)

// CaptionRequest asks for one enriched caption.
type CaptionRequest struct {
	PostID       string
	Platform     string
	MediaRef     string
	DraftCaption string
}

// CaptionResult is the generated caption plus its token accounting, which
// the budget guard needs to settle the reservation.
type CaptionResult struct {
	Caption string
	Usage   budget.TokenUsage
}

// CaptionClient generates captions. Implemented over gRPC against the
// Python captioning sidecar.
type CaptionClient interface {
	GenerateCaption(ctx context.Context, req CaptionRequest) (*CaptionResult, error)
	Close() error
}

// GRPCCaptionClient implements CaptionClient by calling the sidecar via gRPC.
type GRPCCaptionClient struct {
	conn   *grpc.ClientConn
	client captionv1.CaptionServiceClient
	cfg    *config.CaptionConfig
}

// NewGRPCCaptionClient creates a new gRPC caption client.
func NewGRPCCaptionClient(addr string, cfg *config.CaptionConfig) (*GRPCCaptionClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to caption service at %s: %w", addr, err)
	}
	return &GRPCCaptionClient{
		conn:   conn,
		client: captionv1.NewCaptionServiceClient(conn),
		cfg:    cfg,
	}, nil
}

// GenerateCaption implements CaptionClient
func (c *GRPCCaptionClient) GenerateCaption(ctx context.Context, req CaptionRequest) (*CaptionResult, error) {
	resp, err := c.client.GenerateCaption(ctx, &captionv1.CaptionRequest{
		PostId:       req.PostID,
		Platform:     req.Platform,
		MediaRef:     req.MediaRef,
		DraftCaption: req.DraftCaption,
		Provider:     c.cfg.Provider,
		Model:        c.cfg.Model,
		MaxTokens:    int32(c.cfg.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC GenerateCaption call failed: %w", err)
	}

	result := &CaptionResult{Caption: resp.GetCaption()}
	if usage := resp.GetUsage(); usage != nil {
		result.Usage = budget.TokenUsage{
			InputTokens:  int(usage.GetInputTokens()),
			OutputTokens: int(usage.GetOutputTokens()),
		}
	}
	return result, nil
}

// Close releases the gRPC connection.
func (c *GRPCCaptionClient) Close() error {
	return c.conn.Close()
}

// EstimateInputTokens approximates prompt size for the budget estimate.
// The sidecar counts exactly; four bytes per token is close enough to hold
// a conservative reservation.
func EstimateInputTokens(req CaptionRequest) int {
	return (len(req.DraftCaption)+len(req.MediaRef))/4 + 64
}
