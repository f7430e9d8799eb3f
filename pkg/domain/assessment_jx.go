package domain

import (
	"time"

	"github.com/go-faster/jx"
)

// Encode writes the assessment using the public response field names.
// all_features keeps canonical schema order.
func (a *RiskAssessment) Encode(e *jx.Encoder) {
	e.ObjStart()

	e.FieldStart("result")
	e.Str(a.Result)
	e.FieldStart("risk_level")
	e.Str(string(a.RiskLevel))
	e.FieldStart("confidence")
	e.Float64(a.Confidence)
	e.FieldStart("prediction")
	e.Int(a.Prediction)
	e.FieldStart("probability_phishing")
	e.Float64(a.ProbabilityPhishing)
	e.FieldStart("probability_legitimate")
	e.Float64(a.ProbabilityLegitimate)

	e.FieldStart("top_risk_factors")
	e.ArrStart()
	for _, f := range a.TopRiskFactors {
		f.Encode(e)
	}
	e.ArrEnd()

	e.FieldStart("all_features")
	a.EncodeFeatures(e)

	e.FieldStart("url_analyzed")
	e.Str(a.URL)

	e.FieldStart("report_reasons")
	e.ArrStart()
	for _, r := range a.Reasons {
		if r == "" {
			continue
		}
		e.Str(r)
	}
	e.ArrEnd()

	e.FieldStart("phishing_anatomy")
	a.Anatomy.Encode(e)

	e.FieldStart("advice")
	e.Str(a.Advice)
	e.FieldStart("scan_timestamp")
	e.Str(a.ScannedAt.Format(time.RFC3339Nano))

	e.ObjEnd()
}

// EncodeFeatures writes all_features as an object in canonical schema order.
func (a *RiskAssessment) EncodeFeatures(e *jx.Encoder) {
	e.ObjStart()
	for _, f := range a.AllFeatures {
		e.FieldStart(f.Name)
		e.Float64(f.Value)
	}
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (a *RiskAssessment) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	a.Encode(e)

	return append([]byte(nil), e.Bytes()...), nil
}

// Encode writes a top risk factor entry.
func (f AttributionEntry) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("feature")
	e.Str(f.Label)
	e.FieldStart("value")
	e.Float64(f.Value)
	e.FieldStart("shap_value")
	e.Float64(f.Contribution)
	e.FieldStart("impact")
	e.Str(string(f.Impact))
	e.ObjEnd()
}

// Encode writes the anatomy summary; ssl is reported as Present/Missing.
func (a Anatomy) Encode(e *jx.Encoder) {
	ssl := "Missing"
	if a.SSL {
		ssl = "Present"
	}

	e.ObjStart()
	e.FieldStart("ssl")
	e.Str(ssl)
	e.FieldStart("ip_in_domain")
	e.Bool(a.IPInDomain)
	e.FieldStart("shortened_url")
	e.Bool(a.ShortenedURL)
	e.ObjEnd()
}
