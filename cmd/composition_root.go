package cmd

import (
	"log/slog"

	httpin "householdplanet/internal/adapters/in/http"
	"householdplanet/internal/adapters/out/postgres"
	"householdplanet/internal/core/application/usecases/commands"
	"householdplanet/internal/core/application/usecases/queries"
	"householdplanet/internal/core/ports"
	"householdplanet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.TrackingCache
	sms        ports.SmsSender
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cache ports.TrackingCache,
	sms ports.SmsSender,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		sms:        sms,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.sms, c.logger)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(c.createUoWFactory(), c.sms, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.createUoWFactory(), c.cache, c.sms, c.logger)
}

func (c *CompositionRoot) CreateRescheduleDeliveryCommandHandler() commands.RescheduleDeliveryCommandHandler {
	return commands.NewRescheduleDeliveryCommandHandler(c.createUoWFactory(), c.cache, c.sms, c.logger)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateSendDeliveryRemindersCommandHandler() commands.SendDeliveryRemindersCommandHandler {
	return commands.NewSendDeliveryRemindersCommandHandler(c.createUoWFactory(), c.sms, c.logger)
}

func (c *CompositionRoot) CreateGetLocationsQueryHandler() queries.GetLocationsQueryHandler {
	return queries.NewGetLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryPriceQueryHandler() queries.GetDeliveryPriceQueryHandler {
	return queries.NewGetDeliveryPriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTrackingQueryHandler() queries.GetDeliveryTrackingQueryHandler {
	return queries.NewGetDeliveryTrackingQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryAnalyticsQueryHandler() queries.GetDeliveryAnalyticsQueryHandler {
	return queries.NewGetDeliveryAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateLocationCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateScheduleDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateRescheduleDeliveryCommandHandler(),
		c.CreateSubmitFeedbackCommandHandler(),
		c.CreateGetLocationsQueryHandler(),
		c.CreateGetDeliveryPriceQueryHandler(),
		c.CreateGetDeliveryTrackingQueryHandler(),
		c.CreateGetDeliveryAnalyticsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendDeliveryRemindersCommandHandler(), c.logger)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
