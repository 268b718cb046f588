package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SDNDocument is a small published list: one entity and two individuals.
const SDNDocument = `<?xml version="1.0" standalone="yes"?>
<sdnList xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns="http://tempuri.org/sdnList.xsd">
  <publshInformation>
    <Publish_Date>03/11/2019</Publish_Date>
    <Record_Count>3</Record_Count>
  </publshInformation>
  <sdnEntry>
    <uid>36</uid>
    <lastName>AEROCARIBBEAN AIRLINES</lastName>
    <sdnType>Entity</sdnType>
    <programList>
      <program>CUBA</program>
    </programList>
  </sdnEntry>
  <sdnEntry>
    <uid>4106</uid>
    <firstName>Helmer</firstName>
    <lastName>HERRERA BUITRAGO</lastName>
    <sdnType>Individual</sdnType>
    <programList>
      <program>SDNT</program>
    </programList>
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
  <sdnEntry>
    <uid>7000</uid>
    <firstName>Ana</firstName>
    <lastName>SOLO</lastName>
    <sdnType>Individual</sdnType>
  </sdnEntry>
</sdnList>
`

// WriteSDNFile writes doc to a temporary sdn.xml and returns its path.
func WriteSDNFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdn.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}
