package catalog

import "time"

// defaultEntries is the built-in resource table. Add rows, not code.
//
// Resources that only accept PUT/POST (no GET) are deliberately absent:
// endpointcert, clearthreatsandvulneribilities, ancendpoint/apply,
// ancendpoint/clear, guestuser/suspend, sgtbulk, pxgridnode approve.
var defaultEntries = []Entry{
	// ERS /ers/config
	{Alias: "activedirectory", ObjectName: "ERSActiveDirectory", Path: "/ers/config/activedirectory"},
	{Alias: "adminuser", ObjectName: "AdminUser", Path: "/ers/config/adminuser"},
	{Alias: "allowedprotocols", ObjectName: "AllowedProtocols", Path: "/ers/config/allowedprotocols"},
	{Alias: "ancendpoint", ObjectName: "ErsAncEndpoint", Path: "/ers/config/ancendpoint"},
	{Alias: "ancpolicy", ObjectName: "ErsAncPolicy", Path: "/ers/config/ancpolicy"},
	{Alias: "authorizationprofile", ObjectName: "AuthorizationProfile", Path: "/ers/config/authorizationprofile"},
	{Alias: "byodportal", ObjectName: "BYODPortal", Path: "/ers/config/byodportal"},
	{Alias: "certificateprofile", ObjectName: "CertificateProfile", Path: "/ers/config/certificateprofile"},
	{Alias: "certificatetemplate", ObjectName: "ERSCertificateTemplate", Path: "/ers/config/certificatetemplate"},
	{Alias: "downloadableacl", ObjectName: "DownloadableAcl", Path: "/ers/config/downloadableacl"},
	{Alias: "egressmatrixcell", ObjectName: "EgressMatrixCell", Path: "/ers/config/egressmatrixcell"},
	{Alias: "endpoint", ObjectName: "ERSEndPoint", Path: "/ers/config/endpoint"},
	{Alias: "endpointgroup", ObjectName: "EndPointGroup", Path: "/ers/config/endpointgroup"},
	{Alias: "externalradiusserver", ObjectName: "ExternalRadiusServer", Path: "/ers/config/externalradiusserver"},
	{Alias: "filterpolicy", ObjectName: "ERSFilterPolicy", Path: "/ers/config/filterpolicy"},
	{Alias: "guestlocation", ObjectName: "LocationIdentification", Path: "/ers/config/guestlocation"},
	{Alias: "guestsmtpnotificationsettings", ObjectName: "ERSGuestSmtpNotificationSettings", Path: "/ers/config/guestsmtpnotificationsettings"},
	{Alias: "guestssid", ObjectName: "GuestSSID", Path: "/ers/config/guestssid"},
	{Alias: "guesttype", ObjectName: "GuestType", Path: "/ers/config/guesttype", SettleDelay: time.Second},
	{Alias: "guestuser", ObjectName: "GuestUser", Path: "/ers/config/guestuser"},
	{Alias: "hotspotportal", ObjectName: "HotspotPortal", Path: "/ers/config/hotspotportal"},
	{Alias: "identitygroup", ObjectName: "IdentityGroup", Path: "/ers/config/identitygroup"},
	{Alias: "idstoresequence", ObjectName: "IdStoreSequence", Path: "/ers/config/idstoresequence"},
	{Alias: "internaluser", ObjectName: "InternalUser", Path: "/ers/config/internaluser"},
	{Alias: "mydeviceportal", ObjectName: "MyDevicePortal", Path: "/ers/config/mydeviceportal"},
	{Alias: "nativesupplicantprofile", ObjectName: "ERSNSPProfile", Path: "/ers/config/nativesupplicantprofile"},
	{Alias: "networkdevice", ObjectName: "NetworkDevice", Path: "/ers/config/networkdevice"},
	{Alias: "networkdevicegroup", ObjectName: "NetworkDeviceGroup", Path: "/ers/config/networkdevicegroup"},
	{Alias: "node", ObjectName: "Node", Path: "/ers/config/node"},
	{Alias: "portal", ObjectName: "ERSPortal", Path: "/ers/config/portal"},
	{Alias: "portalglobalsetting", ObjectName: "PortalCustomizationGlobalSetting", Path: "/ers/config/portalglobalsetting"},
	{Alias: "portaltheme", ObjectName: "PortalTheme", Path: "/ers/config/portaltheme"},
	{Alias: "profilerprofile", ObjectName: "ProfilerProfile", Path: "/ers/config/profilerprofile"},
	{Alias: "pxgridnode", ObjectName: "pxgridNode", Path: "/ers/config/pxgridnode"},
	{Alias: "radiusserversequence", ObjectName: "RadiusServerSequence", Path: "/ers/config/radiusserversequence"},
	{Alias: "restidstore", ObjectName: "ERSRestIDStore", Path: "/ers/config/restidstore"},
	{Alias: "selfregportal", ObjectName: "SelfRegPortal", Path: "/ers/config/selfregportal"},
	{Alias: "sessionservicenode", ObjectName: "SessionServiceNode", Path: "/ers/config/sessionservicenode"},
	{Alias: "sgacl", ObjectName: "Sgacl", Path: "/ers/config/sgacl"},
	{Alias: "sgmapping", ObjectName: "SGMapping", Path: "/ers/config/sgmapping"},
	{Alias: "sgmappinggroup", ObjectName: "SGMappingGroup", Path: "/ers/config/sgmappinggroup"},
	{Alias: "sgt", ObjectName: "Sgt", Path: "/ers/config/sgt"},
	{Alias: "sgtvnvlan", ObjectName: "SgtVNVlanContainer", Path: "/ers/config/sgtvnvlan"},
	{Alias: "smsprovider", ObjectName: "SmsProviderIdentification", Path: "/ers/config/smsprovider"},
	{Alias: "sponsoredguestportal", ObjectName: "SponsoredGuestPortal", Path: "/ers/config/sponsoredguestportal"},
	{Alias: "sponsorgroup", ObjectName: "SponsorGroup", Path: "/ers/config/sponsorgroup"},
	{Alias: "sponsorgroupmember", ObjectName: "SponsorGroupMember", Path: "/ers/config/sponsorgroupmember", NoDetail: true},
	{Alias: "sponsorportal", ObjectName: "SponsorPortal", Path: "/ers/config/sponsorportal"},
	{Alias: "sxpconnections", ObjectName: "ERSSxpConnection", Path: "/ers/config/sxpconnections"},
	{Alias: "sxplocalbindings", ObjectName: "ERSSxpLocalBindings", Path: "/ers/config/sxplocalbindings"},
	{Alias: "sxpvpns", ObjectName: "ERSSxpVpn", Path: "/ers/config/sxpvpns"},
	{Alias: "tacacscommandsets", ObjectName: "TacacsCommandSets", Path: "/ers/config/tacacscommandsets"},
	{Alias: "tacacsexternalservers", ObjectName: "TacacsExternalServer", Path: "/ers/config/tacacsexternalservers"},
	{Alias: "tacacsprofile", ObjectName: "TacacsProfile", Path: "/ers/config/tacacsprofile"},
	{Alias: "tacacsserversequence", ObjectName: "TacacsServerSequence", Path: "/ers/config/tacacsserversequence"},
	{Alias: "telemetryinfo", ObjectName: "TelemetryInfo", Path: "/ers/config/telemetryinfo"},

	// OpenAPI backup & restore
	{Alias: "backup-last-status", ObjectName: "-", Path: "/api/v1/backup-restore/config/last-backup-status"},
	{Alias: "backup-schedule", ObjectName: "-", Path: "/api/v1/backup-restore/config/schedule-config-backup"},

	// OpenAPI certificates
	{Alias: "certs-trusted", ObjectName: "-", Path: "/api/v1/certs/trusted-certificate"},
	{Alias: "certs-system", ObjectName: "-", Path: "/api/v1/certs/system-certificate/$hostname"},
	{Alias: "certs-csr", ObjectName: "-", Path: "/api/v1/certs/certificate-signing-request"},

	// OpenAPI deployment
	{Alias: "deployment-node", ObjectName: "-", Path: "/api/v1/deployment/node"},
	{Alias: "deployment-node-detail", ObjectName: "-", Path: "/api/v1/deployment/node/$hostname"},
	{Alias: "deployment-node-interface", ObjectName: "-", Path: "/api/v1/deployment/node/$hostname/interface"},
	{Alias: "deployment-node-profile", ObjectName: "-", Path: "/api/v1/profile/$hostname"},
	{Alias: "deployment-node-group", ObjectName: "-", Path: "/api/v1/deployment/node-group"},
	{Alias: "deployment-pan-ha", ObjectName: "-", Path: "/api/v1/deployment/pan-ha"},
	{Alias: "deployment-sxp-interface", ObjectName: "-", Path: "/api/v1/node/$hostname/sxp-interface"},

	// OpenAPI endpoints
	{Alias: "endpoints", ObjectName: "-", Path: "/api/v1/endpoint"},
	{Alias: "endpoint-custom-attribute", ObjectName: "-", Path: "/api/v1/endpoint-custom-attribute"},
	{Alias: "endpoint-summary", ObjectName: "-", Path: "/api/v1/endpoint/deviceType/summary"},

	// OpenAPI licensing
	{Alias: "license-connection-type", ObjectName: "-", Path: "/api/v1/license/system/connection-type"},
	{Alias: "license-eval", ObjectName: "-", Path: "/api/v1/license/system/eval-license"},
	{Alias: "license-feature-map", ObjectName: "-", Path: "/api/v1/license/system/feature-to-tier-mapping"},
	{Alias: "license-register", ObjectName: "-", Path: "/api/v1/license/system/register"},
	{Alias: "license-smart", ObjectName: "-", Path: "/api/v1/license/system/smart"},
	{Alias: "license-smart-state", ObjectName: "-", Path: "/api/v1/license/system/smart-state"},
	{Alias: "license-tier-state", ObjectName: "-", Path: "/api/v1/license/system/tier-state"},

	// OpenAPI patching and repositories
	{Alias: "patch", ObjectName: "-", Path: "/api/v1/patch"},
	{Alias: "hotpatch", ObjectName: "-", Path: "/api/v1/hotpatch"},
	{Alias: "repository", ObjectName: "-", Path: "/api/v1/repository"},
	{Alias: "repository-files", ObjectName: "-", Path: "/api/v1/repository/$name/files"},

	// OpenAPI system settings
	{Alias: "proxy", ObjectName: "-", Path: "/api/v1/system-settings/proxy"},
	{Alias: "transport-gateway", ObjectName: "-", Path: "/api/v1/system-settings/telemetry/transport-gateway"},
	{Alias: "ise-version", ObjectName: "-", Path: "/api/v1/system/ise-version"},
	{Alias: "task", ObjectName: "-", Path: "/api/v1/task"},
	{Alias: "task-detail", ObjectName: "-", Path: "/api/v1/task/$id"},
	{Alias: "lsd", ObjectName: "-", Path: "/api/v1/lsd/updateLsdSettings"},

	// OpenAPI network access policy
	{Alias: "na-authorization-profiles", ObjectName: "-", Path: "/api/v1/policy/network-access/authorization-profiles"},
	{Alias: "na-conditions", ObjectName: "-", Path: "/api/v1/policy/network-access/condition"},
	{Alias: "na-conditions-authn", ObjectName: "-", Path: "/api/v1/policy/network-access/condition/authentication"},
	{Alias: "na-conditions-authz", ObjectName: "-", Path: "/api/v1/policy/network-access/condition/authorization"},
	{Alias: "na-conditions-policy-sets", ObjectName: "-", Path: "/api/v1/policy/network-access/condition/policyset"},
	{Alias: "na-dictionaries", ObjectName: "-", Path: "/api/v1/policy/network-access/dictionaries"},
	{Alias: "na-dictionaries-authn", ObjectName: "-", Path: "/api/v1/policy/network-access/dictionaries/authentication"},
	{Alias: "na-dictionaries-authz", ObjectName: "-", Path: "/api/v1/policy/network-access/dictionaries/authorization"},
	{Alias: "na-dictionaries-policy-set", ObjectName: "-", Path: "/api/v1/policy/network-access/dictionaries/policyset"},
	{Alias: "na-global-exception", ObjectName: "-", Path: "/api/v1/policy/network-access/policy-set/global-exception"},
	{Alias: "na-identity-stores", ObjectName: "-", Path: "/api/v1/policy/network-access/identity-stores"},
	{Alias: "na-network-conditions", ObjectName: "-", Path: "/api/v1/policy/network-access/network-condition"},
	{Alias: "na-policy-set", ObjectName: "-", Path: "/api/v1/policy/network-access/policy-set"},
	{Alias: "na-policy-set-authn", ObjectName: "-", Path: "/api/v1/policy/network-access/policy-set/$id/authentication"},
	{Alias: "na-policy-set-authz", ObjectName: "-", Path: "/api/v1/policy/network-access/policy-set/$id/authorization"},
	{Alias: "na-policy-set-exception", ObjectName: "-", Path: "/api/v1/policy/network-access/policy-set/$id/exception"},
	{Alias: "na-security-groups", ObjectName: "-", Path: "/api/v1/policy/network-access/security-groups"},
	{Alias: "na-service-names", ObjectName: "-", Path: "/api/v1/policy/network-access/service-names"},
	{Alias: "na-time-date-conditions", ObjectName: "-", Path: "/api/v1/policy/network-access/time-condition"},

	// OpenAPI device administration policy
	{Alias: "da-command-sets", ObjectName: "-", Path: "/api/v1/policy/device-admin/command-sets"},
	{Alias: "da-conditions", ObjectName: "-", Path: "/api/v1/policy/device-admin/condition"},
	{Alias: "da-conditions-authn", ObjectName: "-", Path: "/api/v1/policy/device-admin/condition/authentication"},
	{Alias: "da-conditions-authz", ObjectName: "-", Path: "/api/v1/policy/device-admin/condition/authorization"},
	{Alias: "da-conditions-policy-sets", ObjectName: "-", Path: "/api/v1/policy/device-admin/condition/policyset"},
	{Alias: "da-dictionaries", ObjectName: "-", Path: "/api/v1/policy/device-admin/dictionaries"},
	{Alias: "da-global-exception", ObjectName: "-", Path: "/api/v1/policy/device-admin/policy-set/global-exception"},
	{Alias: "da-identity-stores", ObjectName: "-", Path: "/api/v1/policy/device-admin/identity-stores"},
	{Alias: "da-network-conditions", ObjectName: "-", Path: "/api/v1/policy/device-admin/network-condition"},
	{Alias: "da-policy-set", ObjectName: "-", Path: "/api/v1/policy/device-admin/policy-set"},
	{Alias: "da-policy-set-authn", ObjectName: "-", Path: "/api/v1/policy/device-admin/policy-set/$id/authentication"},
	{Alias: "da-policy-set-authz", ObjectName: "-", Path: "/api/v1/policy/device-admin/policy-set/$id/authorization"},
	{Alias: "da-policy-set-exception", ObjectName: "-", Path: "/api/v1/policy/device-admin/policy-set/$id/exception"},
	{Alias: "da-service-names", ObjectName: "-", Path: "/api/v1/policy/device-admin/service-names"},
	{Alias: "da-shell-profiles", ObjectName: "-", Path: "/api/v1/policy/device-admin/shell-profiles"},
	{Alias: "da-time-date-conditions", ObjectName: "-", Path: "/api/v1/policy/device-admin/time-condition"},

	// OpenAPI TrustSec
	{Alias: "trustsec-sgvnmapping", ObjectName: "-", Path: "/api/v1/trustsec/sgvnmapping"},
	{Alias: "trustsec-virtualnetwork", ObjectName: "-", Path: "/api/v1/trustsec/virtualnetwork"},
	{Alias: "trustsec-vnvlanmapping", ObjectName: "-", Path: "/api/v1/trustsec/vnvlanmapping"},

	// OpenAPI integrations
	{Alias: "duo-identitysync", ObjectName: "-", Path: "/api/v1/duo-identitysync/identitysync"},
	{Alias: "duo-mfa", ObjectName: "-", Path: "/api/v1/duo-mfa/mfa"},
	{Alias: "pxgrid-direct-connectors", ObjectName: "-", Path: "/api/v1/pxgrid-direct/connector-config"},
	{Alias: "pxgrid-direct-dictionary", ObjectName: "-", Path: "/api/v1/pxgrid-direct/dictionary-references"},
	{Alias: "userequipment", ObjectName: "-", Path: "/api/v1/fiveg/user-equipment"},
	{Alias: "subscriber", ObjectName: "-", Path: "/api/v1/fiveg/subscriber"},
	{Alias: "enable-mfa", ObjectName: "-", Path: "/api/v1/admin/mfa"},
}
