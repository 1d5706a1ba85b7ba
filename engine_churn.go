package groomkit

import (
	"context"
	"strconv"
)

// ChurnPrediction is the result of a churn probability request for one
// customer.
type ChurnPrediction struct {
	CustomerID  string
	Probability float64
	Model       string
}

// churnModelVersion names the scoring model stamped onto predictions. The
// baseline model returns the configured probability for every customer; a
// trained model replaces it behind the same operation.
const churnModelVersion = "baseline-v0"

// PredictChurn describes the predictchurn operation and its observable behavior.
//
// PredictChurn may return an error when input validation or engine wiring fails.
// PredictChurn does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) PredictChurn(ctx context.Context, customerID string) (ChurnPrediction, error) {
	if e == nil || e.churn == nil {
		return ChurnPrediction{}, ErrEngineNotReady
	}
	if customerID == "" {
		return ChurnPrediction{}, ErrCustomerRequired
	}

	e.churn.Record(ctx, eventChurnPredictionRequested, map[string]string{
		"customer_id": customerID,
	})

	prediction := ChurnPrediction{
		CustomerID:  customerID,
		Probability: e.config.Churn.BaselineProbability,
		Model:       churnModelVersion,
	}

	e.metricInc(MetricChurnPrediction)
	e.churn.Record(ctx, eventChurnPredictionCompleted, map[string]string{
		"customer_id": customerID,
		"probability": strconv.FormatFloat(prediction.Probability, 'f', 2, 64),
		"model":       prediction.Model,
	})

	return prediction, nil
}
