package mocks

import "github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	SentTo       []string
	SentMessages []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	m.SentTo = append(m.SentTo, to)
	m.SentMessages = append(m.SentMessages, message)
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

var _ domain.NotificationService = (*MockNotificationService)(nil)
