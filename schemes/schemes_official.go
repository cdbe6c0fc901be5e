package schemes

// Official is a sorted list of IANA-registered URL schemes. It is the
// counterpart to Unofficial and NoAuthority, and is consulted by the
// extractor package when building its composite scheme-matching pattern.
//
// Source: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
var Official = []string{
	`aaa`,
	`aaas`,
	`about`,
	`acap`,
	`acct`,
	`cap`,
	`cid`,
	`coap`,
	`coaps`,
	`crid`,
	`data`,
	`dav`,
	`dict`,
	`dns`,
	`example`,
	`file`,
	`filesystem`,
	`ftp`,
	`geo`,
	`go`,
	`gopher`,
	`h323`,
	`http`,
	`https`,
	`iax`,
	`icap`,
	`im`,
	`imap`,
	`info`,
	`ipp`,
	`ipps`,
	`iris`,
	`jabber`,
	`ldap`,
	`ldaps`,
	`magnet`,
	`mailto`,
	`mid`,
	`mqtt`,
	`news`,
	`nfs`,
	`nntp`,
	`ntp`,
	`pop`,
	`pres`,
	`reload`,
	`rtsp`,
	`rtsps`,
	`sftp`,
	`sip`,
	`sips`,
	`sms`,
	`snmp`,
	`ssh`,
	`stun`,
	`stuns`,
	`tag`,
	`tel`,
	`telnet`,
	`tftp`,
	`turn`,
	`turns`,
	`urn`,
	`vnc`,
	`ws`,
	`wss`,
	`xmpp`,
}
