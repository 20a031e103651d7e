package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"payflow/internal/domain"

	mocks "payflow/internal/service/mocks"
	"payflow/pkg/e"
	"payflow/pkg/logger"
	"payflow/tests"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCaseRecordPaymentResponse(t *testing.T) {
	type mockBehavior func(r *mocks.MockDB, ctx context.Context, response domain.PaymentResponse)
	testCases := []struct {
		name             string
		inputResponse    domain.PaymentResponse
		retainDeclined   bool
		mockBehavior     mockBehavior
		expectedError    error
		expectedID       string
		expectedResponse string
	}{
		{
			name:           "OK",
			inputResponse:  tests.InstanceStruct,
			retainDeclined: true,
			mockBehavior: func(r *mocks.MockDB, ctx context.Context, response domain.PaymentResponse) {
				r.EXPECT().SavePaymentResponse(ctx, response).Return(response.ID, nil)
				r.EXPECT().GetByID(ctx, response.ID).Return(response, nil)
			},
			expectedError:    nil,
			expectedID:       tests.InstanceStruct.ID,
			expectedResponse: tests.InstanceString,
		},
		{
			name: "Skips failed when not retaining",
			inputResponse: domain.PaymentResponse{
				ID:      "failed-flow",
				Outcome: domain.PaymentFailed,
			},
			retainDeclined: false,
			mockBehavior: func(r *mocks.MockDB, ctx context.Context, response domain.PaymentResponse) {
			},
			expectedError: nil,
			expectedID:    "failed-flow",
		},
		{
			name: "Retains failed when configured",
			inputResponse: domain.PaymentResponse{
				ID:      "failed-flow",
				Outcome: domain.PaymentFailed,
			},
			retainDeclined: true,
			mockBehavior: func(r *mocks.MockDB, ctx context.Context, response domain.PaymentResponse) {
				r.EXPECT().SavePaymentResponse(ctx, response).Return(response.ID, nil)
			},
			expectedError: nil,
			expectedID:    "failed-flow",
		},
		{
			name:           "InternalError",
			inputResponse:  tests.InstanceStruct,
			retainDeclined: true,
			mockBehavior: func(r *mocks.MockDB, ctx context.Context, response domain.PaymentResponse) {
				r.EXPECT().SavePaymentResponse(ctx, response).Return("", sql.ErrConnDone)
			},
			expectedError: errors.New("service.RecordPaymentResponse: sql: connection is already closed"),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()

			mockDB := mocks.NewMockDB(ctrl)

			testCase.mockBehavior(mockDB, ctx, testCase.inputResponse)
			logger := logger.SetupPrettySlog()
			service := NewService(logger, mockDB, nil, testCase.retainDeclined)

			id, err := service.RecordPaymentResponse(ctx, testCase.inputResponse)
			if testCase.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, testCase.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.expectedID, id)

				if testCase.expectedResponse != "" {
					response, _ := service.GetByID(ctx, id)
					actualJSON, _ := service.GetPaymentResponseJSON(ctx, response)
					assert.JSONEq(t, testCase.expectedResponse, actualJSON, "JSONs should match")
				}
			}

		})
	}

}

func TestCaseGetPaymentResponseByID(t *testing.T) {
	type mockBehavior func(r *mocks.MockDB, ctx context.Context, id string)

	testCases := []struct {
		name             string
		id               string
		mockBehavior     mockBehavior
		expectedError    error
		expectedResponse domain.PaymentResponse
	}{
		{
			name:          "OK",
			id:            tests.InstanceStruct.ID,
			expectedError: nil,
			mockBehavior: func(r *mocks.MockDB, ctx context.Context, id string) {
				r.EXPECT().GetByID(ctx, id).Return(tests.InstanceStruct, nil)
			},
			expectedResponse: tests.InstanceStruct,
		},
		{
			name:          "Not Found",
			id:            "missing",
			expectedError: fmt.Errorf("service.GetByID: payment not found"),
			mockBehavior: mockBehavior(func(r *mocks.MockDB, ctx context.Context, id string) {
				r.EXPECT().GetByID(ctx, id).Return(domain.PaymentResponse{}, e.ErrNotFound)
			}),
			expectedResponse: domain.PaymentResponse{},
		},
		{
			name:          "InternalError",
			id:            "broken",
			expectedError: errors.New("service.GetByID: sql: connection is already closed"),
			mockBehavior: mockBehavior(func(r *mocks.MockDB, ctx context.Context, id string) {
				r.EXPECT().GetByID(ctx, id).Return(domain.PaymentResponse{}, sql.ErrConnDone)
			}),
			expectedResponse: domain.PaymentResponse{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockDB := mocks.NewMockDB(ctrl)
			testCase.mockBehavior(mockDB, ctx, testCase.id)
			logger := logger.SetupPrettySlog()
			service := NewService(logger, mockDB, nil, true)
			response, err := service.GetByID(ctx, testCase.id)
			if testCase.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, testCase.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, response, testCase.expectedResponse)
			}

		})
	}
}

func TestCaseSettleFlow(t *testing.T) {
	type mockBehavior func(r *mocks.MockDB, ctx context.Context)

	payment := tests.InstanceStruct.Payment
	requested := tests.InstanceStruct.TotalAmountsRequested
	transactions := tests.InstanceStruct.Transactions

	testCases := []struct {
		name            string
		mockBehavior    mockBehavior
		expectedError   error
		expectedOutcome domain.PaymentOutcome
	}{
		{
			name: "OK fulfilled",
			mockBehavior: func(r *mocks.MockDB, ctx context.Context) {
				r.EXPECT().SavePaymentResponse(ctx, gomock.Any()).Return(payment.ID, nil)
			},
			expectedOutcome: domain.PaymentFulfilled,
		},
		{
			name: "Save fails",
			mockBehavior: func(r *mocks.MockDB, ctx context.Context) {
				r.EXPECT().SavePaymentResponse(ctx, gomock.Any()).Return("", sql.ErrConnDone)
			},
			expectedError: errors.New("service.SettleFlow: service.RecordPaymentResponse: sql: connection is already closed"),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockDB := mocks.NewMockDB(ctrl)
			testCase.mockBehavior(mockDB, ctx)
			logger := logger.SetupPrettySlog()
			service := NewService(logger, mockDB, nil, true)

			response, err := service.SettleFlow(ctx, payment, requested, transactions)
			if testCase.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, testCase.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, payment.ID, response.ID)
				assert.Equal(t, testCase.expectedOutcome, response.Outcome)
				assert.Equal(t, requested, response.TotalAmountsRequested)
			}

		})
	}
}
