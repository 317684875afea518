package main

import (
	"dao_voting_platform/configs"
	"dao_voting_platform/internal"
	"dao_voting_platform/internal/dao"
	"dao_voting_platform/internal/db"
	"dao_voting_platform/internal/db/repositories"
	"dao_voting_platform/internal/di"
	"dao_voting_platform/internal/services"
	"dao_voting_platform/internal/token"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	config, err := configs.LoadPlatformServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Infow("config loaded", "environment", config.App.Environment)

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	native := token.NewSystem()
	factory := dao.NewFactory(native, nil)

	daoRepository := repositories.NewDaoRepository(database)
	resolver := services.NewFactoryResolver(factory)
	indexerService := services.NewIndexerService(resolver, daoRepository, config.Indexer, logger)

	go indexDeployments(factory.Deployments(), indexerService, logger)

	bot, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		logger.Fatalw("failed to create notifications bot", "error", err)
	}

	s := gocron.NewScheduler(time.UTC)
	if _, err = s.Every(config.Finalizer.SweepInterval).Do(func() {
		sweepProposals(factory.Managers(), bot, config.Bot.ChatID, logger)
	}); err != nil {
		logger.Fatalw("failed to schedule finalizer sweep", "error", err)
	}

	logger.Info("platform service started")
	s.StartBlocking()
}

func indexDeployments(deployments <-chan dao.Deployment, indexerService services.IndexerService, logger *zap.SugaredLogger) {
	for deployment := range deployments {
		stored, err := indexerService.AddDao(deployment.Address)
		if errors.Is(err, services.ErrDaoAlreadyExists) {
			logger.Warnw("dao already indexed", "address", deployment.Address)
			continue
		}
		if err != nil {
			logger.Errorw("failed to index dao", "address", deployment.Address, "error", err)
			continue
		}

		logger.Infow("dao indexed", "address", stored.Address, "name", stored.Name, "tokenSymbol", stored.TokenSymbol)
	}
}

func sweepProposals(managers []*dao.Manager, bot *tgbotapi.BotAPI, chatID int64, logger *zap.SugaredLogger) {
	for _, manager := range managers {
		for _, proposalID := range proposalsToFinalize(manager, time.Now()) {
			finalized, err := manager.Finalize(proposalID)
			if err != nil {
				logger.Errorw("failed to finalize proposal", "dao", manager.Address(), "proposal", proposalID, "error", err)
				continue
			}

			logger.Infow("proposal finalized", "dao", manager.Address(), "proposal", proposalID, "status", finalized.Status.String())

			message := tgbotapi.NewMessage(chatID, messageForFinalizedProposal(manager, finalized))
			if _, err = bot.Send(message); err != nil {
				logger.Errorw("could not send message", "error", err)
			}
		}
	}
}

// proposalsToFinalize returns the pending proposals of the manager whose
// voting window elapsed by now.
func proposalsToFinalize(manager *dao.Manager, now time.Time) []uint64 {
	var due []uint64

	for _, proposal := range manager.Proposals() {
		if proposal.Status != dao.StatusPending {
			continue
		}
		if now.Before(proposal.CreatedAt.Add(manager.ProposalTimeToVote())) {
			continue
		}
		due = append(due, proposal.ID)
	}

	return due
}

func messageForFinalizedProposal(manager *dao.Manager, proposal dao.Proposal) string {
	status := cases.Title(language.English).String(proposal.Status.String())
	symbol := manager.GovernanceToken().Symbol()

	return fmt.Sprintf(
		"%s: proposal #%d created %s is %s (yes: %s $%s, no: %s $%s)",
		manager.DaoName(),
		proposal.ID,
		internal.Format(proposal.CreatedAt),
		status,
		internal.FormatTokenAmount(proposal.YesVotes),
		symbol,
		internal.FormatTokenAmount(proposal.NoVotes),
		symbol,
	)
}
