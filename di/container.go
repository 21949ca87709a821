package di

import (
	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/delivery_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/discovery_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/feed_fetch_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/synthesis_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/accounting_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/archive_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/delivery_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/feed_fetch_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/source_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/subscriber_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/gateway/synthesis_gateway"
	"github.com/heyybhargav/personal-newsletter-sub000/port/discovery_port"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/aggregate_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/archive_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/discovery_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/dispatch_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/register_source_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/resolve_source_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	DispatchUsecase       *dispatch_usecase.DispatchUsecase
	ResolveSourceUsecase  *resolve_source_usecase.ResolveSourceUsecase
	RegisterSourceUsecase *register_source_usecase.RegisterSourceUsecase
	DiscoveryUsecase      *discovery_usecase.DiscoveryUsecase
	ArchiveUsecase        *archive_usecase.ArchiveUsecase
	SubscriberGateway     *subscriber_gateway.SubscriberGateway
	Repository            *newsletter_db.Repository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repository := newsletter_db.NewRepository(pool)

	// Persistence-backed gateways share the one repository.
	subscriberGatewayImpl := subscriber_gateway.NewSubscriberGateway(repository)
	sourceGatewayImpl := source_gateway.NewSourceGateway(repository)
	archiveGatewayImpl := archive_gateway.NewArchiveGateway(repository)
	accountingGatewayImpl := accounting_gateway.NewAccountingGateway(repository)

	// Outbound drivers and the gateways that translate for them.
	hostLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.FeedFetchInterval, cfg.RateLimit.FeedFetchBurst)
	feedFetchDriverImpl := feed_fetch_driver.NewFeedFetchDriver(cfg, hostLimiter)
	feedFetchGatewayImpl := feed_fetch_gateway.NewFeedFetchGateway(feedFetchDriverImpl)

	synthesisDriverImpl := synthesis_driver.NewSynthesisDriver(cfg)
	synthesisGatewayImpl := synthesis_gateway.NewSynthesisGateway(synthesisDriverImpl, cfg.Synthesis.MaxItems)

	deliveryDriverImpl := delivery_driver.NewDeliveryDriver(cfg)
	deliveryGatewayImpl := delivery_gateway.NewDeliveryGateway(deliveryDriverImpl)

	aggregateUsecase := aggregate_usecase.NewAggregateUsecase(feedFetchGatewayImpl)
	dispatchUsecase := dispatch_usecase.NewDispatchUsecase(
		subscriberGatewayImpl,
		aggregateUsecase,
		synthesisGatewayImpl,
		deliveryGatewayImpl,
		archiveGatewayImpl,
		accountingGatewayImpl,
		domain.DefaultPricingTable,
		cfg.Dispatch,
	)

	resolveSourceUsecase := resolve_source_usecase.NewResolveSourceUsecase()
	registerSourceUsecase := register_source_usecase.NewRegisterSourceUsecase(resolveSourceUsecase, sourceGatewayImpl)

	providers := []discovery_port.SearchProvider{
		discovery_driver.NewSubstackProvider(cfg),
		discovery_driver.NewSocialProvider(cfg),
		discovery_driver.NewYouTubeProvider(cfg),
		discovery_driver.NewPodcastProvider(cfg),
		discovery_driver.NewRedditProvider(cfg),
		discovery_driver.NewRSSProvider(cfg),
	}
	discoveryUsecase := discovery_usecase.NewDiscoveryUsecase(providers, cfg.Discovery.ProviderTimeout)

	archiveUsecase := archive_usecase.NewArchiveUsecase(archiveGatewayImpl)

	return &ApplicationComponents{
		DispatchUsecase:       dispatchUsecase,
		ResolveSourceUsecase:  resolveSourceUsecase,
		RegisterSourceUsecase: registerSourceUsecase,
		DiscoveryUsecase:      discoveryUsecase,
		ArchiveUsecase:        archiveUsecase,
		SubscriberGateway:     subscriberGatewayImpl,
		Repository:            repository,
	}
}
