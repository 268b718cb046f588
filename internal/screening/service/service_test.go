package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/metrics"
	"sdnscreen/internal/source"
	dErrors "sdnscreen/pkg/domain-errors"
	"sdnscreen/pkg/platform/sentinel"
)

const document = `<?xml version="1.0" standalone="yes"?>
<sdnList>
  <publshInformation>
    <Publish_Date>03/11/2019</Publish_Date>
    <Record_Count>2</Record_Count>
  </publshInformation>
  <sdnEntry>
    <uid>36</uid>
    <lastName>AEROCARIBBEAN AIRLINES</lastName>
    <sdnType>Entity</sdnType>
  </sdnEntry>
  <sdnEntry>
    <uid>4106</uid>
    <firstName>Helmer</firstName>
    <lastName>HERRERA BUITRAGO</lastName>
    <sdnType>Individual</sdnType>
    <idList>
      <id>
        <uid>1011</uid>
        <idType>Passport</idType>
        <idNumber>J287011</idNumber>
        <idCountry>Colombia</idCountry>
      </id>
    </idList>
    <akaList>
      <aka>
        <uid>7776</uid>
        <type>a.k.a.</type>
        <category>weak</category>
        <lastName>PACHO</lastName>
      </aka>
    </akaList>
  </sdnEntry>
</sdnList>
`

// stubSource serves a fixed document and counts opens.
type stubSource struct {
	doc     string
	openErr error
	info    source.PublishInfo
	infoErr error
	opens   int
	closed  int
}

type trackedReader struct {
	io.Reader
	src *stubSource
}

func (r trackedReader) Close() error {
	r.src.closed++
	return nil
}

func (s *stubSource) Open(context.Context) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opens++
	return trackedReader{Reader: strings.NewReader(s.doc), src: s}, nil
}

func (s *stubSource) Info(context.Context) (source.PublishInfo, error) {
	return s.info, s.infoErr
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	src     *stubSource
	metrics *metrics.Metrics
	svc     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.src = &stubSource{doc: document}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(s.src, slog.New(slog.NewTextHandler(io.Discard, nil)), s.metrics)
}

func (s *ServiceSuite) outcome(name string) float64 {
	return testutil.ToFloat64(s.metrics.SearchOutcome.WithLabelValues(name))
}

func (s *ServiceSuite) TestSearchMatch() {
	result, err := s.svc.Search(s.ctx, screening.Query{FirstName: "Helmer", LastName: "Pacho"})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)
	s.Equal("4106", result.Matches[0].UID)
	s.NotEmpty(result.SearchID)
	s.Equal(2, result.Entries)
	s.Equal(map[screening.Rule]int{screening.RuleAlias: 1}, result.Rules)

	s.Equal(1.0, s.outcome("match"))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.RuleMatches.WithLabelValues("alias")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.EntriesScanned))
	s.Equal(1, s.src.closed, "stream is closed after the search")
}

func (s *ServiceSuite) TestEachSearchOpensAFreshStream() {
	for range 3 {
		result, err := s.svc.Search(s.ctx, screening.Query{ID: "J287011", Country: "Colombia"})
		s.Require().NoError(err)
		s.Len(result.Matches, 1)
	}
	s.Equal(3, s.src.opens)
	s.Equal(3.0, s.outcome("match"))
}

func (s *ServiceSuite) TestSearchNoMatch() {
	result, err := s.svc.Search(s.ctx, screening.Query{FirstName: "XX", LastName: "XX"})
	s.Require().NoError(err)
	s.NotNil(result.Matches)
	s.Empty(result.Matches)
	s.Equal(1.0, s.outcome("no_match"))
}

func (s *ServiceSuite) TestSourceUnavailable() {
	s.src.openErr = fmt.Errorf("open sdn list: %w: %w", sentinel.ErrNotFound, fs.ErrNotExist)

	result, err := s.svc.Search(s.ctx, screening.Query{LastName: "x"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeSourceUnavailable))
	s.ErrorIs(err, fs.ErrNotExist)
	s.Equal(1.0, s.outcome("source_error"))
}

func (s *ServiceSuite) TestParseErrorIsUnprocessable() {
	s.src.doc = strings.Replace(document, "<lastName>PACHO</lastName>", "<lastName>PACHO</firstName>", 1)

	result, err := s.svc.Search(s.ctx, screening.Query{ID: "J287011", Country: "Colombia"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeUnprocessableSource))
	s.True(screening.IsParseError(err))

	de, ok := dErrors.As(err)
	s.Require().True(ok)
	s.Contains(de.Message, "sdnEntry #2")
	s.Equal(1.0, s.outcome("parse_error"))
}

func (s *ServiceSuite) TestTruncatedDocument() {
	s.src.doc = document[:strings.Index(document, "<akaList>")]

	_, err := s.svc.Search(s.ctx, screening.Query{ID: "J287011", Country: "Colombia"})
	s.True(dErrors.HasCode(err, dErrors.CodeSourceUnavailable))
	s.ErrorIs(err, screening.ErrUnterminatedEntry)
	s.Equal(1.0, s.outcome("stream_error"))
}

func (s *ServiceSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.Search(ctx, screening.Query{LastName: "x"})
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	s.ErrorIs(err, context.Canceled)
}

func (s *ServiceSuite) TestInfo() {
	s.src.info = source.PublishInfo{PublishDate: "03/11/2019", RecordCount: 7449}
	info, err := s.svc.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal(7449, info.RecordCount)

	s.src.infoErr = fmt.Errorf("publish information: %w", sentinel.ErrNotFound)
	_, err = s.svc.Info(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	s.src.infoErr = fmt.Errorf("open sdn list: %w: %w", sentinel.ErrNotFound, fs.ErrNotExist)
	_, err = s.svc.Info(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeSourceUnavailable))

	s.src.infoErr = errors.New("decode publish information: bad")
	_, err = s.svc.Info(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnprocessableSource))
}
