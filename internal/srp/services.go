package srp

import (
	"io"

	"github.com/whiteelite/solid/internal/console"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/domain/repositories"
	"go.uber.org/zap"
)

type options struct {
	out    io.Writer
	queue  repositories.MessageQueueProducer[entities.WelcomeEmail]
	logger *zap.Logger
}

type Option func(*options)

// WithOutput sets the writer the services print to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithQueue makes EmailService enqueue a WelcomeEmail for every send.
// DatabaseService ignores it.
func WithQueue(q repositories.MessageQueueProducer[entities.WelcomeEmail]) Option {
	return func(o *options) { o.queue = q }
}

// WithLogger sets the logger used to report dropped welcome emails.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.out = console.Or(o.out)
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

func newUser(name, email string) entities.User {
	return entities.User{Name: entities.Name(name), Email: entities.Email(email)}
}

// DatabaseService persists a user.
type DatabaseService struct {
	user entities.User
	out  io.Writer
}

func NewDatabaseService(name, email string, opts ...Option) *DatabaseService {
	o := newOptions(opts)
	return &DatabaseService{user: newUser(name, email), out: o.out}
}

func (s *DatabaseService) User() entities.User { return s.user }

func (s *DatabaseService) Save() {
	console.Println(s.out, string(s.user.Name), "is saved")
}

// EmailService notifies a user.
type EmailService struct {
	user   entities.User
	out    io.Writer
	queue  repositories.MessageQueueProducer[entities.WelcomeEmail]
	logger *zap.Logger
}

func NewEmailService(name, email string, opts ...Option) *EmailService {
	o := newOptions(opts)
	return &EmailService{user: newUser(name, email), out: o.out, queue: o.queue, logger: o.logger}
}

func (s *EmailService) User() entities.User { return s.user }

func (s *EmailService) SendWelcomeEmail() {
	console.Println(s.out, string(s.user.Name), "is sent")

	if s.queue == nil {
		return
	}

	event := entities.WelcomeEmail{Name: s.user.Name, Email: s.user.Email}
	if !s.queue.Produce(event) {
		s.logger.Warn("welcome email dropped: queue closed", zap.String("email", string(event.Email)))
	}
}
