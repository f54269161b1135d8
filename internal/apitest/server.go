// Package apitest runs an in-memory stand-in for the remote CSIC API so the
// SDK can be tested end to end without a network. It issues real HS256
// tokens, guards routes with a bearer middleware, and can serve enum fields
// as ordinals or labels to exercise normalization.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingKey = []byte("apitest-signing-key")

var (
	eventOrdinals = map[string]int{
		"Draft": 0, "Published": 1, "Cancelled": 2, "Completed": 3,
	}
	bookingOrdinals = map[string]int{
		"Confirmed": 0, "Cancelled": 1, "Attended": 2, "NoShow": 3,
	}
)

type User struct {
	ID       string
	Email    string
	Password string
	FullName string
	Role     string
}

type Event struct {
	ID              string
	Title           string
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	Location        string
	Capacity        int
	CurrentBookings int
	Status          string
	CreatedByID     string
}

type Booking struct {
	ID          string
	EventID     string
	UserID      string
	Status      string
	BookedAt    time.Time
	CancelledAt *time.Time
}

type Feedback struct {
	ID        string
	EventID   string
	UserID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type Message struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
	IsRead    bool
}

type Server struct {
	// NumericEnums switches status fields to their ordinal encoding, the
	// way older server versions serialize them.
	NumericEnums bool
	// RoleClaim is the claim name tokens carry the role under; empty
	// omits the claim entirely.
	RoleClaim string

	mu       sync.Mutex
	users    map[string]*User
	events   map[string]*Event
	bookings map[string]*Booking
	feedback map[string]*Feedback
	messages map[string]*Message
	hits     map[string]int

	http *httptest.Server
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		RoleClaim: "role",
		users:     make(map[string]*User),
		events:    make(map[string]*Event),
		bookings:  make(map[string]*Booking),
		feedback:  make(map[string]*Feedback),
		messages:  make(map[string]*Message),
		hits:      make(map[string]int),
	}

	engine := gin.New()
	engine.Use(s.countHits)
	s.mount(engine)
	s.http = httptest.NewServer(engine)

	return s
}

func (s *Server) URL() string {
	return s.http.URL
}

func (s *Server) Close() {
	s.http.Close()
}

// Hits reports how many requests matched a route, keyed like "GET /events".
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hits[route]
}

func (s *Server) countHits(c *gin.Context) {
	c.Next()

	s.mu.Lock()
	s.hits[c.Request.Method+" "+c.FullPath()]++
	s.mu.Unlock()
}

func (s *Server) mount(engine *gin.Engine) {
	engine.POST("/auth/login", s.handleLogin)
	engine.POST("/auth/register", s.handleRegister)
	engine.POST("/contactmessages", s.handleSubmitMessage)
	engine.GET("/events", s.handleListEvents)
	engine.GET("/events/upcoming", s.handleUpcomingEvents)
	engine.GET("/events/:eventID", s.handleGetEvent)
	engine.GET("/feedback/events/:eventID", s.handleEventFeedback)

	authed := engine.Group("", s.authenticate)
	{
		authed.POST("/events", s.handleCreateEvent)
		authed.PUT("/events/:eventID/status", s.handleUpdateEventStatus)
		authed.POST("/events/:eventID/bookings", s.handleCreateBooking)
		authed.PUT("/eventbookings/:bookingID/cancel", s.handleCancelBooking)
		authed.PUT("/eventbookings/:bookingID/attendance", s.handleMarkAttendance)
		authed.GET("/eventbookings/my", s.handleMyBookings)
		authed.POST("/feedback/events/:eventID", s.handleCreateFeedback)
		authed.PUT("/feedback/:feedbackID", s.handleUpdateFeedback)
		authed.DELETE("/feedback/:feedbackID", s.handleDeleteFeedback)
		authed.GET("/feedback/my", s.handleMyFeedback)
		authed.GET("/contactmessages", s.handleListMessages)
		authed.PUT("/contactmessages/:messageID/read", s.handleMarkMessageRead)
		authed.GET("/users", s.handleListUsers)
		authed.POST("/users", s.handleCreateUser)
		authed.PATCH("/users/:userID/role", s.handleUpdateUserRole)
		authed.DELETE("/users/:userID", s.handleDeleteUser)
	}
}

func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(*jwt.Token) (any, error) {
		return signingKey, nil
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	sub, _ := claims["sub"].(string)
	c.Set("userID", sub)
	c.Next()
}

// Seeding helpers.

func (s *Server) SeedUser(email, password, fullName, role string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.users[id] = &User{ID: id, Email: email, Password: password, FullName: fullName, Role: role}

	return id
}

func (s *Server) SeedEvent(e Event) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = "Published"
	}
	if e.StartDate.IsZero() {
		e.StartDate = time.Now().Add(24 * time.Hour)
		e.EndDate = e.StartDate.Add(2 * time.Hour)
	}
	s.events[e.ID] = &e

	return e.ID
}

func (s *Server) SeedBooking(eventID, userID, status string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.bookings[id] = &Booking{
		ID: id, EventID: eventID, UserID: userID, Status: status, BookedAt: time.Now(),
	}

	return id
}

func (s *Server) SeedMessage(name, email, body string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.messages[id] = &Message{
		ID: id, Name: name, Email: email, Message: body, CreatedAt: time.Now(),
	}

	return id
}

func (s *Server) Event(id string) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return Event{}, false
	}

	return *e, true
}

// TokenFor issues a token for a seeded user under the server's current
// claim settings.
func (s *Server) TokenFor(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		panic(fmt.Sprintf("apitest: no such user %q", userID))
	}

	return s.issueToken(user)
}

func (s *Server) issueToken(user *User) string {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.FullName,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	if s.RoleClaim != "" && user.Role != "" {
		claims[s.RoleClaim] = user.Role
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(fmt.Sprintf("apitest: signing token: %v", err))
	}

	return signed
}
