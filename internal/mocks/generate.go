package mocks

//go:generate mockery --name ConversationStore --srcpkg github.com/bexbot-lab/bexbot-console/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name BotStore --srcpkg github.com/bexbot-lab/bexbot-console/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name HistoryStore --srcpkg github.com/bexbot-lab/bexbot-console/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Store --srcpkg github.com/bexbot-lab/bexbot-console/internal/integrations --output ./integrations --outpkg integrationmocks --with-expecter
