package apitest

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) eventStatusJSON(status string) any {
	if s.NumericEnums {
		return eventOrdinals[status]
	}

	return status
}

func (s *Server) bookingStatusJSON(status string) any {
	if s.NumericEnums {
		return bookingOrdinals[status]
	}

	return status
}

// eventJSON deliberately serves a bogus availableSpots; clients are expected
// to recompute it.
func (s *Server) eventJSON(e *Event) gin.H {
	return gin.H{
		"id":              e.ID,
		"title":           e.Title,
		"description":     e.Description,
		"startDate":       e.StartDate,
		"endDate":         e.EndDate,
		"location":        e.Location,
		"capacity":        e.Capacity,
		"currentBookings": e.CurrentBookings,
		"status":          s.eventStatusJSON(e.Status),
		"createdById":     e.CreatedByID,
		"availableSpots":  999,
	}
}

func (s *Server) bookingJSON(b *Booking, withEvent bool) gin.H {
	body := gin.H{
		"id":       b.ID,
		"eventId":  b.EventID,
		"userId":   b.UserID,
		"status":   s.bookingStatusJSON(b.Status),
		"bookedAt": b.BookedAt,
	}
	if b.CancelledAt != nil {
		body["cancelledAt"] = *b.CancelledAt
	}
	if withEvent {
		if e, ok := s.events[b.EventID]; ok {
			body["event"] = s.eventJSON(e)
		}
	}

	return body
}

func (s *Server) feedbackJSON(f *Feedback) gin.H {
	body := gin.H{
		"id":        f.ID,
		"eventId":   f.EventID,
		"userId":    f.UserID,
		"rating":    f.Rating,
		"comment":   f.Comment,
		"createdAt": f.CreatedAt,
	}
	if e, ok := s.events[f.EventID]; ok {
		body["eventTitle"] = e.Title
	}
	if u, ok := s.users[f.UserID]; ok {
		body["userFullName"] = u.FullName
	}

	return body
}

func (s *Server) messageJSON(m *Message) gin.H {
	return gin.H{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"message":   m.Message,
		"createdAt": m.CreatedAt,
		"isRead":    m.IsRead,
	}
}

func (s *Server) userJSON(u *User) gin.H {
	return gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"fullName": u.FullName,
		"role":     u.Role,
	}
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == req.Email && user.Password == req.Password {
			c.JSON(http.StatusOK, gin.H{
				"token":  s.issueToken(user),
				"userId": user.ID,
				"email":  user.Email,
			})
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == req.Email {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
			return
		}
	}

	user := &User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FirstName + " " + req.LastName,
		Role:     "Student",
	}
	s.users[user.ID] = user

	c.JSON(http.StatusOK, gin.H{
		"token":  s.issueToken(user),
		"userId": user.ID,
		"email":  user.Email,
	})
}

func (s *Server) handleListEvents(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]gin.H, 0, len(s.events))
	for _, id := range s.sortedEventIDs() {
		events = append(events, s.eventJSON(s.events[id]))
	}

	c.JSON(http.StatusOK, events)
}

func (s *Server) handleUpcomingEvents(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 5
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid count"})
			return
		}
		count = parsed
	}

	events := make([]gin.H, 0, count)
	for _, id := range s.sortedEventIDs() {
		e := s.events[id]
		if e.Status != "Published" || !e.StartDate.After(time.Now()) {
			continue
		}
		events = append(events, s.eventJSON(e))
		if len(events) == count {
			break
		}
	}

	c.JSON(http.StatusOK, events)
}

func (s *Server) handleGetEvent(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[c.Param("eventID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "event not found"})
		return
	}

	body := s.eventJSON(e)

	bookings := make([]gin.H, 0)
	for _, b := range s.bookings {
		if b.EventID == e.ID {
			bookings = append(bookings, s.bookingJSON(b, false))
		}
	}
	feedback := make([]gin.H, 0)
	for _, f := range s.feedback {
		if f.EventID == e.ID {
			feedback = append(feedback, s.feedbackJSON(f))
		}
	}

	body["bookings"] = bookings
	body["feedback"] = feedback
	if creator, ok := s.users[e.CreatedByID]; ok {
		body["createdBy"] = s.userJSON(creator)
	}

	c.JSON(http.StatusOK, body)
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		StartDate   time.Time `json:"startDate"`
		EndDate     time.Time `json:"endDate"`
		Capacity    int       `json:"capacity"`
		Location    string    `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Status:      "Draft",
		CreatedByID: c.GetString("userID"),
	}
	s.events[e.ID] = e

	c.JSON(http.StatusCreated, e.ID)
}

func (s *Server) handleUpdateEventStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[c.Param("eventID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "event not found"})
		return
	}

	e.Status = req.Status
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[c.Param("eventID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "event not found"})
		return
	}
	if e.CurrentBookings >= e.Capacity {
		c.JSON(http.StatusBadRequest, gin.H{"message": "event is fully booked"})
		return
	}

	b := &Booking{
		ID:       uuid.NewString(),
		EventID:  e.ID,
		UserID:   c.GetString("userID"),
		Status:   "Confirmed",
		BookedAt: time.Now(),
	}
	s.bookings[b.ID] = b
	e.CurrentBookings++

	c.JSON(http.StatusCreated, b.ID)
}

func (s *Server) handleCancelBooking(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[c.Param("bookingID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	if b.Status != "Confirmed" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "only confirmed bookings can be cancelled"})
		return
	}

	now := time.Now()
	b.Status = "Cancelled"
	b.CancelledAt = &now
	if e, ok := s.events[b.EventID]; ok && e.CurrentBookings > 0 {
		e.CurrentBookings--
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleMarkAttendance(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[c.Param("bookingID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}

	b.Status = req.Status
	c.Status(http.StatusNoContent)
}

func (s *Server) handleMyBookings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := c.GetString("userID")
	bookings := make([]gin.H, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, s.bookingJSON(b, true))
		}
	}

	c.JSON(http.StatusOK, bookings)
}

func (s *Server) handleEventFeedback(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback := make([]gin.H, 0)
	for _, f := range s.feedback {
		if f.EventID == c.Param("eventID") {
			feedback = append(feedback, s.feedbackJSON(f))
		}
	}

	c.JSON(http.StatusOK, feedback)
}

func (s *Server) handleCreateFeedback(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := &Feedback{
		ID:        uuid.NewString(),
		EventID:   c.Param("eventID"),
		UserID:    c.GetString("userID"),
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	s.feedback[f.ID] = f

	c.JSON(http.StatusCreated, f.ID)
}

func (s *Server) handleUpdateFeedback(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feedback[c.Param("feedbackID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "feedback not found"})
		return
	}

	f.Rating = req.Rating
	f.Comment = req.Comment
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteFeedback(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedback[c.Param("feedbackID")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "feedback not found"})
		return
	}

	delete(s.feedback, c.Param("feedbackID"))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleMyFeedback(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := c.GetString("userID")
	feedback := make([]gin.H, 0)
	for _, f := range s.feedback {
		if f.UserID == userID {
			feedback = append(feedback, s.feedbackJSON(f))
		}
	}

	c.JSON(http.StatusOK, feedback)
}

func (s *Server) handleSubmitMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := &Message{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	s.messages[m.ID] = m

	c.JSON(http.StatusCreated, m.ID)
}

func (s *Server) handleListMessages(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unreadOnly := c.Query("unreadOnly") == "true"
	messages := make([]gin.H, 0)
	for _, m := range s.messages {
		if unreadOnly && m.IsRead {
			continue
		}
		messages = append(messages, s.messageJSON(m))
	}

	c.JSON(http.StatusOK, messages)
}

func (s *Server) handleMarkMessageRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[c.Param("messageID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "message not found"})
		return
	}

	m.IsRead = true
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]gin.H, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, s.userJSON(u))
	}

	c.JSON(http.StatusOK, users)
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FirstName + " " + req.LastName,
		Role:     req.Role,
	}
	s.users[user.ID] = user

	c.JSON(http.StatusCreated, user.ID)
}

func (s *Server) handleUpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[c.Param("userID")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	u.Role = req.Role
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[c.Param("userID")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	delete(s.users, c.Param("userID"))
	c.Status(http.StatusNoContent)
}

func (s *Server) sortedEventIDs() []string {
	ids := make([]string, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
