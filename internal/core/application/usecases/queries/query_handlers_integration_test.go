package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/postgres/dbtest"

	"github.com/stretchr/testify/suite"
)

// QueryHandlersIntegrationTestSuite runs the shared cases against PostgreSQL
// in a container.
type QueryHandlersIntegrationTestSuite struct {
	QueryHandlersTestSuite
	pg *dbtest.Postgres
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	pg, err := dbtest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.db = pg.DB
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.resetFactory()
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	dbtest.SkipIfShort(t)
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
