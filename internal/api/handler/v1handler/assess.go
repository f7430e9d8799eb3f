package v1handler

import (
	"context"
	"errors"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

func DomainAssessmentToV1Specs(in *domain.RiskAssessment) *v1specs.RiskAssessment {
	factors := make([]v1specs.RiskFactor, 0, len(in.TopRiskFactors))
	for _, f := range in.TopRiskFactors {
		factors = append(factors, v1specs.RiskFactor{
			Feature:   f.Label,
			Value:     f.Value,
			ShapValue: f.Contribution,
			Impact:    v1specs.RiskFactorImpact(f.Impact),
		})
	}

	reasons := make([]string, 0, len(in.Reasons))
	for _, r := range in.Reasons {
		if r != "" {
			reasons = append(reasons, r)
		}
	}

	// all_features is kept raw so the object keeps canonical schema order
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	in.EncodeFeatures(e)

	ssl := v1specs.AnatomySslMissing
	if in.Anatomy.SSL {
		ssl = v1specs.AnatomySslPresent
	}

	return &v1specs.RiskAssessment{
		Result:                in.Result,
		RiskLevel:             v1specs.RiskAssessmentRiskLevel(in.RiskLevel),
		Confidence:            in.Confidence,
		Prediction:            in.Prediction,
		ProbabilityPhishing:   in.ProbabilityPhishing,
		ProbabilityLegitimate: in.ProbabilityLegitimate,
		TopRiskFactors:        factors,
		AllFeatures:           jx.Raw(append([]byte(nil), e.Bytes()...)),
		URLAnalyzed:           in.URL,
		ReportReasons:         reasons,
		PhishingAnatomy: v1specs.Anatomy{
			Ssl:          ssl,
			IPInDomain:   in.Anatomy.IPInDomain,
			ShortenedURL: in.Anatomy.ShortenedURL,
		},
		Advice:        in.Advice,
		ScanTimestamp: in.ScannedAt,
	}
}

// AssessURL scores the URL of the request body.
func (h *Handler) AssessURL(ctx context.Context, req *v1specs.AssessRequest) (*v1specs.RiskAssessment, error) {
	if h.opts.RequireAuth && !isPublic(ctx) {
		if _, ok := Subject(ctx); !ok {
			return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}
	}

	rawURL := strings.TrimSpace(req.URL.Or(""))
	ctx = logger.WithFields(ctx, zap.String("url", rawURL), zap.Bool("realTime", req.RealTime.Or(false)))

	res, err := h.deps.Assessor.Assess(ctx, rawURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "assessment timed out")
		}

		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "url assessed",
		zap.String("riskLevel", string(res.RiskLevel)),
		zap.Float64("confidence", res.Confidence))

	return DomainAssessmentToV1Specs(res), nil
}
