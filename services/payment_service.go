package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// ConnectionFeeCents is the flat fee to unlock a match's contact details.
const ConnectionFeeCents = 500

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("user is not part of this match")
	ErrAlreadyPaid    = errors.New("match has already been paid for")
)

// MatchGateway is what payment processing needs from the match service.
type MatchGateway interface {
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID, status, paymentRef string) error
}

// ProfileDirectory resolves user ids to display profiles.
type ProfileDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// ChatCreator opens the chat channel between two matched users.
type ChatCreator interface {
	GetOrCreateChat(ctx context.Context, seeker, landlord models.UserProfile, matchID string) (string, error)
}

// PaymentService drives the unlock-contact flow: checkout session creation
// and checkout.session.completed handling.
type PaymentService struct {
	Matches  MatchGateway
	Profiles ProfileDirectory
	Chats    ChatCreator
	Dynamo   *DynamoService
	AppURL   string
}

// InitializeStripe sets the global Stripe API key from the environment.
func InitializeStripe() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY is not set; payment endpoints will fail")
	}
}

// CreateCheckoutSession validates that userID is a party to the match and
// that it is still unpaid, then creates a Stripe checkout session carrying
// the match and party ids in its metadata.
func (ps *PaymentService) CreateCheckoutSession(ctx context.Context, matchID, userID string) (sessionID, url string, err error) {
	match, err := ps.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load match %s: %w", matchID, err)
	}
	if match == nil {
		return "", "", ErrMatchNotFound
	}
	if match.SeekerID != userID && match.LandlordID != userID {
		return "", "", ErrNotParticipant
	}
	if match.Status == models.MatchStatusPaid || match.Status == models.MatchStatusConnected {
		return "", "", ErrAlreadyPaid
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("SpaceMatch Connection Fee"),
						Description: stripe.String("Unlock contact information and start a conversation"),
					},
					UnitAmount: stripe.Int64(ConnectionFeeCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/messages?matchId=%s&success=true", ps.appURL(), matchID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/post/%s?cancelled=true", ps.appURL(), match.SeekerPostID)),
	}
	params.AddMetadata("matchId", matchID)
	params.AddMetadata("userId", userID)
	params.AddMetadata("seekerId", match.SeekerID)
	params.AddMetadata("landlordId", match.LandlordID)

	s, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.ID, s.URL, nil
}

// HandleCheckoutCompleted processes a completed checkout session: the match
// moves to connected with the payment reference attached, a connection
// record is written per party, and the chat channel between the two users
// is created. The status transition is the paid transaction of record, so
// its failure is surfaced; the follow-on writes are logged and skipped.
// A session without match metadata did not come from our checkout flow and
// no retry can repair it, so it is logged and dropped without error.
func (ps *PaymentService) HandleCheckoutCompleted(ctx context.Context, matchID, seekerID, landlordID, paymentRef string, amount int64) error {
	if matchID == "" || seekerID == "" || landlordID == "" {
		log.Printf("⚠️ Completed checkout session is missing match metadata (matchId=%q); ignoring", matchID)
		return nil
	}

	if err := ps.Matches.UpdateMatchStatus(ctx, matchID, models.MatchStatusConnected, paymentRef); err != nil {
		return fmt.Errorf("failed to confirm payment for match %s: %w", matchID, err)
	}

	if amount == 0 {
		amount = ConnectionFeeCents
	}
	ps.recordConnection(ctx, matchID, seekerID, landlordID, amount)
	ps.recordConnection(ctx, matchID, landlordID, seekerID, amount)

	seeker := ps.lookupProfile(ctx, seekerID)
	landlord := ps.lookupProfile(ctx, landlordID)
	if _, err := ps.Chats.GetOrCreateChat(ctx, seeker, landlord, matchID); err != nil {
		log.Printf("❌ Failed to create chat for match %s: %v", matchID, err)
	}

	log.Printf("✅ Payment completed for match %s", matchID)
	return nil
}

func (ps *PaymentService) recordConnection(ctx context.Context, matchID, userID, connectedUserID string, amount int64) {
	connection := models.Connection{
		ID:              fmt.Sprintf("%s_%s", matchID, userID),
		UserID:          userID,
		ConnectedUserID: connectedUserID,
		MatchID:         matchID,
		Amount:          amount,
		CreatedAt:       time.Now().UTC(),
	}
	if err := ps.Dynamo.PutItem(ctx, models.ConnectionsTable, connection); err != nil {
		log.Printf("❌ Failed to record connection for match %s, user %s: %v", matchID, userID, err)
	}
}

// lookupProfile falls back to a bare profile when the directory has no
// record, so chat creation still proceeds.
func (ps *PaymentService) lookupProfile(ctx context.Context, userID string) models.UserProfile {
	profile, err := ps.Profiles.GetUserProfile(ctx, userID)
	if err != nil || profile == nil {
		log.Printf("⚠️ No profile found for user %s: %v", userID, err)
		return models.UserProfile{UserID: userID, DisplayName: "Unknown"}
	}
	return *profile
}

func (ps *PaymentService) appURL() string {
	if ps.AppURL != "" {
		return ps.AppURL
	}
	return "http://localhost:3000"
}
