package paymentControllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

func getStripeConfig() (secretKey, currency string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	currency = os.Getenv("STRIPE_CURRENCY")
	if currency == "" {
		currency = "aed"
	}
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, strings.ToLower(currency), nil
}

type CreateIntentInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// POST /api/create-payment-intent
func CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		secretKey, currency, err := getStripeConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		stripe.Key = secretKey

		var input CreateIntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			return
		}

		// Stripe wants the amount in the smallest currency unit.
		minorUnits := input.Amount.Mul(decimal.NewFromInt(100)).IntPart()

		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(minorUnits),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}
