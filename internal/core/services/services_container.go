package services

import (
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The notification service is attached separately
// once the mail transport is configured.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Library = NewLibraryService(repos)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// AttachNotifications wires the notification gateway into the container and
// hands it to the library facade.
func AttachNotifications(container *portssvc.ServiceContainer, sender portssvc.MailSender, libraryName string) {
	notifier := NewNotificationService(sender, libraryName)
	container.Notification = notifier
	container.Library.SetupNotifications(notifier)
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LibrarySvcFacade      = (*libraryService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
)
